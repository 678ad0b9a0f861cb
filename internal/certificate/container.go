package certificate

type CertificateContainer struct {
	Service Service
	Handler *Handler
}

func NewCertificateContainer(store Store, codec TokenCodec) *CertificateContainer {
	service := NewService(store, codec, nil)
	return &CertificateContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}
