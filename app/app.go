package app

import (
	"github.com/geodatos/geoforms/client"
	"github.com/geodatos/geoforms/config"
	"github.com/geodatos/geoforms/session"
)

type App struct {
	*client.Client
	*session.Session
	config.Config
}
