package viewer

import (
	"fmt"
	"time"

	"github.com/geodatos/geoforms/model"
)

// MockSubmissions generates the deterministic placeholder batch shown when
// the backend is unreachable. Ten submissions, one per trailing day, with a
// text answer, a 1..5 numeric answer and a fixed option pick.
func MockSubmissions(now time.Time) []model.Submission {
	subs := make([]model.Submission, 0, 10)
	for i := 1; i <= 10; i++ {
		rating := float64(i%5 + 1)
		subs = append(subs, model.Submission{
			ID:        int64(i),
			CreatedAt: now.Add(-time.Duration(i) * 24 * time.Hour),
			Status:    "completed",
			Answers: []model.Answer{
				{QuestionID: 1, ValueText: fmt.Sprintf("Respuesta %d", i)},
				{QuestionID: 2, ValueNumber: &rating},
				{QuestionID: 3, ValueText: "opcion1"},
			},
		})
	}
	return subs
}
