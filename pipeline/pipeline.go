package pipeline

import (
	"context"
	"github.com/pkg/errors"
	"log"
	"speech_pipeline/playht"
	"speech_pipeline/storage"
	"strings"
	"time"
)

const captionLimit = 1024

type Option func(p *Pipeline)

type Pipeline struct {
	converter IConverter
	writer    IArtifactWriter
	policy    PollPolicy
	journal   storage.IStorage
	publisher IPublisher
}

func NewPipeline(converter IConverter, writer IArtifactWriter, opt ...Option) *Pipeline {
	p := &Pipeline{
		converter: converter,
		writer:    writer,
	}

	for _, f := range opt {
		f(p)
	}

	return p
}

func WithPollPolicy(policy PollPolicy) Option {
	return func(p *Pipeline) {
		p.policy = policy
	}
}

func WithJournal(s storage.IStorage) Option {
	return func(p *Pipeline) {
		p.journal = s
	}
}

func WithPublisher(pub IPublisher) Option {
	return func(p *Pipeline) {
		p.publisher = pub
	}
}

// Run отправляет текст на озвучку, ждет завершения и сохраняет mp3 в outputPath.
func (p *Pipeline) Run(ctx context.Context, req playht.Request, outputPath string) (*Result, error) {
	res := &Result{Path: outputPath, State: Submitting}

	handle, err := p.converter.Submit(ctx, req)
	if err != nil {
		return nil, p.fail(res, err)
	}

	res.Handle = handle
	p.transition(res, Polling)

	status, err := p.poll(ctx, res)
	if err != nil {
		return nil, p.fail(res, err)
	}

	res.Status = status
	p.transition(res, Downloading)

	if status.AudioURL == "" {
		return nil, p.fail(res, errors.Wrapf(ErrNoAudioURL, "status is %s", status.Kind))
	}

	res.Bytes, err = p.writer.Save(ctx, status.AudioURL, outputPath)
	if err != nil {
		return nil, p.fail(res, err)
	}

	log.Println("download complete.")
	p.transition(res, Done)
	p.finish(req, res)

	return res, nil
}

func (p *Pipeline) poll(ctx context.Context, res *Result) (playht.Status, error) {
	pollCtx := ctx
	if p.policy.Timeout > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeout(ctx, p.policy.Timeout)
		defer cancel()
	}

	// истек таймаут опроса, а не родительский контекст
	timedOut := func() bool {
		return pollCtx.Err() != nil && ctx.Err() == nil
	}

	for {
		if p.policy.MaxAttempts > 0 && res.Attempts >= p.policy.MaxAttempts {
			return playht.Status{}, errors.Wrapf(ErrPollingExhausted, "%d attempts", res.Attempts)
		}
		if timedOut() {
			return playht.Status{}, errors.Wrapf(ErrPollingExhausted, "timeout %s", p.policy.Timeout)
		}
		if err := ctx.Err(); err != nil {
			return playht.Status{}, err
		}

		status, err := p.converter.CheckStatus(pollCtx, res.Handle)
		res.Attempts++
		if err != nil {
			if timedOut() {
				return playht.Status{}, errors.Wrapf(ErrPollingExhausted, "timeout %s", p.policy.Timeout)
			}
			return playht.Status{}, err
		}

		log.Printf("conversion status is: %v\n", status.Converted)
		if status.Done() {
			return status, nil
		}

		if p.policy.Interval > 0 {
			select {
			case <-pollCtx.Done():
			case <-time.After(p.policy.Interval):
			}
		}
	}
}

func (p *Pipeline) transition(res *Result, to State) {
	log.Printf("%s: %s -> %s\n", res.Handle.TranscriptionID, res.State, to)
	res.State = to
}

func (p *Pipeline) fail(res *Result, err error) error {
	at := res.State
	p.transition(res, Failed)

	return &RunError{
		State:    at,
		Handle:   res.Handle,
		Attempts: res.Attempts,
		Err:      err,
	}
}

// finish журнал и публикация после сохранения файла. Их ошибки не отменяют результат.
func (p *Pipeline) finish(req playht.Request, res *Result) {
	if p.journal != nil {
		r := record{
			TranscriptionID: res.Handle.TranscriptionID,
			Voice:           req.Voice,
			Status:          res.Status.Kind.String(),
			AudioURL:        res.Status.AudioURL,
			Path:            res.Path,
			Bytes:           res.Bytes,
			Attempts:        res.Attempts,
			FinishedAt:      time.Now(),
		}

		if err := p.journal.StoreObject(res.Handle.TranscriptionID, r); err != nil {
			log.Println(errors.Wrap(err, "store journal error"))
		}
	}

	if p.publisher != nil {
		if err := p.publisher.Publish(res.Path, caption(req.Content)); err != nil {
			log.Println(errors.Wrap(err, "publish error"))
		}
	}
}

func caption(content []string) string {
	c := []rune(strings.Join(content, "\n"))
	if len(c) > captionLimit {
		c = c[:captionLimit]
	}

	return string(c)
}
