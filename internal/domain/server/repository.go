package server

import "context"

type Repository interface {
	Save(ctx context.Context, server *Server) error
	Update(ctx context.Context, server *Server) error
	Delete(ctx context.Context, serverID uint) error
	GetByID(ctx context.Context, serverID uint) (*Server, error)
	GetBySiteName(ctx context.Context, siteName string) (*Server, error)
	List(ctx context.Context, page, pageSize int) ([]*Server, int64, error)
}
