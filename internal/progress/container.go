package progress

type ProgressContainer struct {
	Recorder Recorder
	Service  Service
	Handler  *Handler
}

func NewProgressContainer(store Store, policy string) *ProgressContainer {
	recorder := Recorder{Policy: policy}
	service := NewService(store, recorder)

	return &ProgressContainer{
		Recorder: recorder,
		Service:  service,
		Handler:  NewHandler(service),
	}
}
