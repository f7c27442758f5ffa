package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/foldervault/internal/common"
	pb "github.com/dmitrijs2005/foldervault/internal/proto"
	"github.com/dmitrijs2005/foldervault/internal/server/models"
	"github.com/dmitrijs2005/foldervault/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String("OK"), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	tokens, err := s.users.RefreshToken(ctx, req.GetValue())
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		s.logger.Error(ctx, "refresh failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return pb.Tokens{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}.ToStruct(), nil
}

func (s *GRPCServer) CreateFolder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in, err := pb.FolderFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	f, err := s.folders.Create(ctx, userID, in.Name)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "folder created", "user_id", userID, "folder_id", f.ID)
	return toProto(f).ToStruct(), nil
}

func (s *GRPCServer) UpdateFolder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in, err := pb.FolderFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	f, err := s.folders.Update(ctx, userID, in.ID, in.Name)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toProto(f).ToStruct(), nil
}

func (s *GRPCServer) DeleteFolder(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.folders.Delete(ctx, userID, req.GetValue()); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "folder deleted", "user_id", userID, "folder_id", req.GetValue())
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListFolders(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	folders, err := s.folders.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]pb.Folder, 0, len(folders))
	for _, f := range folders {
		out = append(out, toProto(f))
	}
	return pb.FoldersToList(out), nil
}

func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "folder not found")
	case errors.Is(err, services.ErrEmptyFolderID), errors.Is(err, services.ErrEmptyFolderName):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func toProto(f *models.Folder) pb.Folder {
	return pb.Folder{ID: f.ID, Name: f.Name, RevisionDate: f.RevisionDate}
}
