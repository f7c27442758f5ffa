// Package grpc exposes the folder sync service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/foldervault/internal/logging"
	pb "github.com/dmitrijs2005/foldervault/internal/proto"
	"github.com/dmitrijs2005/foldervault/internal/server/models"
	"github.com/dmitrijs2005/foldervault/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the token side of services.UserService.
type UserService interface {
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	ValidateAccessToken(accessToken string) (string, error)
}

// FolderService is the folder side of services.FolderService.
type FolderService interface {
	Create(ctx context.Context, userID, name string) (*models.Folder, error)
	Update(ctx context.Context, userID, id, name string) (*models.Folder, error)
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string) ([]*models.Folder, error)
}

type GRPCServer struct {
	pb.UnimplementedFolderServiceServer
	address string
	users   UserService
	folders FolderService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserService, fs FolderService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		folders: fs,
	}
}

// newServer builds the grpc.Server with interceptors and the service
// registered, without binding a listener.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterFolderServiceServer(srv, s)
	return srv
}

// Run serves on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
