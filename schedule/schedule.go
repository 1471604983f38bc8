package schedule

import (
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"log"
)

// Schedule периодический запуск задач. Следующий запуск задачи пропускается, пока не закончился предыдущий.
type Schedule struct {
	c *cron.Cron
}

func NewSchedule() *Schedule {
	return &Schedule{
		c: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
	}
}

func (s *Schedule) Planning(spec string, f func()) error {
	_, err := s.c.AddFunc(spec, f) // "0 9 * * *"
	if err != nil {
		return errors.Wrapf(err, "bad schedule %q", spec)
	}

	log.Printf("planned %q", spec)
	return nil
}

func (s *Schedule) Start() {
	s.c.Start()
}

// Stop останавливает планировщик и ждет завершения запущенных задач
func (s *Schedule) Stop() {
	<-s.c.Stop().Done()
}
