// @title Moodboard API
// @description API for the team mood tracker: morning forecasts, evening check-ins and a dashboard
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
