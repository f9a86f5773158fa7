package templates

import "github.com/geodatos/geoforms/model"

func q(qtype, label string, required bool, opts ...model.Option) model.Question {
	return model.Question{Type: qtype, Label: label, Required: required, Options: opts}
}

func ratingQ(label string, min, max float64) model.Question {
	return model.Question{Type: "rating", Label: label, Required: true, MinValue: &min, MaxValue: &max}
}

var builtin = []Template{
	{
		Name:        "Encuesta de Satisfacción",
		Description: "Evalúa la satisfacción de tus clientes o usuarios",
		Category:    "feedback",
		Form: model.FormDocument{
			Title:       "Encuesta de Satisfacción",
			Description: "Nos gustaría conocer tu opinión",
			Questions: []model.Question{
				ratingQ("¿Cómo calificarías tu experiencia general?", 1, 5),
				q("select_one", "¿Recomendarías nuestro servicio?", true,
					model.Option{Value: "si", Label: "Sí"},
					model.Option{Value: "no", Label: "No"},
					model.Option{Value: "tal_vez", Label: "Tal vez"}),
				q("textarea", "¿Qué podríamos mejorar?", false),
			},
		},
	},
	{
		Name:        "Registro de Evento",
		Description: "Formulario de inscripción para eventos",
		Category:    "events",
		Form: model.FormDocument{
			Title:       "Registro de Evento",
			Description: "Completa tu registro",
			Questions: []model.Question{
				q("text", "Nombre completo", true),
				q("email", "Correo electrónico", true),
				q("phone", "Teléfono", false),
				q("select_one", "¿Cómo te enteraste del evento?", false,
					model.Option{Value: "redes", Label: "Redes sociales"},
					model.Option{Value: "email", Label: "Email"},
					model.Option{Value: "amigo", Label: "Un amigo"},
					model.Option{Value: "otro", Label: "Otro"}),
				q("textarea", "Comentarios adicionales", false),
			},
		},
	},
	{
		Name:        "Formulario de Contacto",
		Description: "Recibe mensajes de tus visitantes",
		Category:    "contact",
		Form: model.FormDocument{
			Title:       "Contáctanos",
			Description: "Envíanos un mensaje y te responderemos pronto",
			Questions: []model.Question{
				q("text", "Nombre", true),
				q("email", "Email", true),
				q("text", "Asunto", true),
				q("textarea", "Mensaje", true),
			},
		},
	},
	{
		Name:        "Encuesta de Campo",
		Description: "Recolección de datos en campo con geolocalización",
		Category:    "field",
		Form: model.FormDocument{
			Title:       "Encuesta de Campo",
			Description: "Registro de datos georreferenciados",
			Questions: []model.Question{
				q("geopoint", "Ubicación GPS", true),
				q("date", "Fecha de visita", true),
				q("image", "Fotografía del sitio", true),
				q("select_one", "Estado del sitio", false,
					model.Option{Value: "bueno", Label: "Bueno"},
					model.Option{Value: "regular", Label: "Regular"},
					model.Option{Value: "malo", Label: "Malo"}),
				q("textarea", "Observaciones", false),
			},
		},
	},
	{
		Name:        "Evaluación de Personal",
		Description: "Evaluación de desempeño de empleados",
		Category:    "hr",
		Form: model.FormDocument{
			Title:       "Evaluación de Desempeño",
			Description: "Evaluación trimestral del empleado",
			Questions: []model.Question{
				q("text", "Nombre del empleado", true),
				q("text", "Departamento", true),
				q("date", "Período de evaluación", true),
				ratingQ("Cumplimiento de objetivos", 1, 5),
				ratingQ("Trabajo en equipo", 1, 5),
				ratingQ("Comunicación", 1, 5),
				ratingQ("Puntualidad", 1, 5),
				q("textarea", "Fortalezas", false),
				q("textarea", "Áreas de mejora", false),
			},
		},
	},
	{
		Name:        "Solicitud de Servicio",
		Description: "Formulario para solicitar servicios o soporte",
		Category:    "support",
		Form: model.FormDocument{
			Title:       "Solicitud de Servicio",
			Description: "Complete la información de su solicitud",
			Questions: []model.Question{
				q("text", "Nombre del solicitante", true),
				q("email", "Correo electrónico", true),
				q("phone", "Teléfono de contacto", true),
				q("select_one", "Tipo de servicio", true,
					model.Option{Value: "tecnico", Label: "Soporte técnico"},
					model.Option{Value: "consulta", Label: "Consulta general"},
					model.Option{Value: "reclamo", Label: "Reclamo"},
					model.Option{Value: "otro", Label: "Otro"}),
				q("select_one", "Prioridad", true,
					model.Option{Value: "alta", Label: "Alta"},
					model.Option{Value: "media", Label: "Media"},
					model.Option{Value: "baja", Label: "Baja"}),
				q("textarea", "Descripción detallada", true),
				q("file", "Archivos adjuntos", false),
			},
		},
	},
}
