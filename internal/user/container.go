package user

type UserContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewUserContainer(repo Repository) *UserContainer {
	svc := NewService(repo)
	return &UserContainer{
		Repo:    repo,
		Service: svc,
		Handler: NewHandler(svc),
	}
}
