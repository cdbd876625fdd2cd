package dto

// GuardarCategoriaRequest is the body for POST/PUT /categorias.
type GuardarCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=80"`
}

func (r *GuardarCategoriaRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return nil
}

// GuardarMarcaRequest is the body for POST/PUT /marcas. Categorias carries
// the associated category ids as {"id": N} references; empty is valid (the
// backend then assigns "Otros" on its own).
type GuardarMarcaRequest struct {
	Nombre     string  `json:"nombre"     validate:"required,min=1,max=80"`
	Categorias []RefID `json:"categorias"`
}

func (r *GuardarMarcaRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return nil
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the expected login answer. A response without a token is
// treated as a failed login regardless of status.
type LoginResponse struct {
	Token string `json:"token"`
}
