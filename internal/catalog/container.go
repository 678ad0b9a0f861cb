package catalog

type CatalogContainer struct {
	Store   Store
	Service Service
	Handler *Handler
}

func NewCatalogContainer(store Store) *CatalogContainer {
	service := NewService(store)
	handler := NewHandler(service)

	return &CatalogContainer{
		Store:   store,
		Service: service,
		Handler: handler,
	}
}
