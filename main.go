package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"speech_pipeline/artifact"
	"speech_pipeline/config"
	"speech_pipeline/pipeline"
	"speech_pipeline/playht"
	"speech_pipeline/schedule"
	"speech_pipeline/storage"
	"speech_pipeline/tbot"
	"speech_pipeline/transport"
	"syscall"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go shutdown(cancel)

	p, err := newPipeline(settings)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	if settings.Schedule == "" {
		if _, err := p.Run(ctx, settings.Request(), settings.OutputPath()); err != nil {
			log.Fatalf("Error: %s", err)
		}
		return
	}

	s := schedule.NewSchedule()
	err = s.Planning(settings.Schedule, func() {
		if _, err := p.Run(ctx, settings.Request(), settings.OutputPath()); err != nil {
			log.Println("Error:", err)
		}
	})
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	s.Start()
	<-ctx.Done()
	s.Stop()
}

func newPipeline(settings *config.Settings) (*pipeline.Pipeline, error) {
	tr := transport.NewTransport()
	client := playht.NewClient(tr, settings.Credentials(), playht.WithEndpoints(settings.Endpoints()))

	journal, err := storage.NewFileStorage(settings.JournalDir)
	if err != nil {
		return nil, err
	}

	opts := []pipeline.Option{
		pipeline.WithPollPolicy(settings.PollPolicy()),
		pipeline.WithJournal(journal),
	}

	if settings.Publish() {
		publisher, err := tbot.NewPublisher(settings.BotToken, settings.ChatID)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pipeline.WithPublisher(publisher))
	}

	return pipeline.NewPipeline(client, artifact.NewWriter(tr), opts...), nil
}

func shutdown(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	cancel()
	log.Println("shutting down")
}
