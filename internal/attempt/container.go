package attempt

import "github.com/saulo-duarte/learnhub/internal/progress"

type AttemptContainer struct {
	Service Service
	Handler *Handler
}

func NewAttemptContainer(store Store, recorder progress.Recorder, opts Options) *AttemptContainer {
	service := NewService(store, recorder, opts)
	return &AttemptContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}
