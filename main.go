package main

import (
	"kidsafe-go/internal/config"
	logger "kidsafe-go/internal/logging"
	"kidsafe-go/internal/models"
	"kidsafe-go/internal/router"

	"go.uber.org/zap"
)

func main() {
	// Load configuration first; the logger takes its rotation settings
	// from it.
	if err := config.Init("."); err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	// Initialize Logger
	log, err := logger.Init(config.Conf.Logging)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	// Load the question configuration table at startup
	questionnaire, err := models.LoadQuestionnaire(config.Conf.Questionnaire.Path)
	if err != nil {
		log.Fatal("Failed to load questionnaire", zap.Error(err))
	}
	log.Info("Questionnaire loaded", zap.Int("questions", len(questionnaire.Questions)))

	// Setup router, passing the logger to it
	r := router.Setup(log, questionnaire)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
