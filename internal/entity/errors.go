package entity

import "errors"

var (
	ErrNotFound           = errors.New("registro não encontrado")
	ErrEmailAlreadyExists = errors.New("este email já está cadastrado")

	// ErrStaleStatus é devolvido pelos repositórios quando um UPDATE
	// condicionado ao status não afeta nenhuma linha (corrida perdida
	// ou transição já aplicada por outra chamada).
	ErrStaleStatus = errors.New("status mudou durante a operação")
)
