// Package autoload initializes the global logger from the environment
// as a side effect of being imported.
package autoload

import (
	configx "github.com/tanpawarit/Chative-Support-Intent-Routing/pkg/config"
	logx "github.com/tanpawarit/Chative-Support-Intent-Routing/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOGGER"))
}
