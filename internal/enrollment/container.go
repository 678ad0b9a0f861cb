package enrollment

type EnrollmentContainer struct {
	Service Service
	Handler *Handler
}

func NewEnrollmentContainer(store Store) *EnrollmentContainer {
	service := NewService(store)
	return &EnrollmentContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}
