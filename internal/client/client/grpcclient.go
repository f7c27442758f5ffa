package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/foldervault/internal/client/models"
	"github.com/dmitrijs2005/foldervault/internal/common"
	pb "github.com/dmitrijs2005/foldervault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.FolderServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.Tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" || method == pb.FolderService_RefreshToken_FullMethodName {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, wrapperspb.String(refresh))
	if rerr != nil {
		return rerr
	}
	tokens, rerr := pb.TokensFromStruct(resp)
	if rerr != nil {
		return rerr
	}
	s.SetTokens(tokens.AccessToken, tokens.RefreshToken)

	return invoker(withAccessToken(ctx, tokens.AccessToken), method, req, reply, cc, opts...)
}

// NewGRPCClient connects to endpointURL. Extra dial options are appended to
// the defaults (insecure transport and the token interceptor).
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFolderServiceClient(conn)
	return nil
}

// SetTokens installs the credentials sent with every call.
func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

// Tokens returns the current pair, which changes after a refresh.
func (s *GRPCClient) Tokens() (access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetValue() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) CreateFolder(ctx context.Context, req models.FolderRequest) (*models.FolderResponse, error) {
	msg := pb.Folder{Name: req.Name.String()}

	resp, err := s.client.CreateFolder(ctx, msg.ToStruct())
	if err != nil {
		return nil, s.mapError(err)
	}
	return folderResponse(resp)
}

func (s *GRPCClient) UpdateFolder(ctx context.Context, id string, req models.FolderRequest) (*models.FolderResponse, error) {
	msg := pb.Folder{ID: id, Name: req.Name.String()}

	resp, err := s.client.UpdateFolder(ctx, msg.ToStruct())
	if err != nil {
		return nil, s.mapError(err)
	}
	return folderResponse(resp)
}

func (s *GRPCClient) DeleteFolder(ctx context.Context, id string) error {
	if _, err := s.client.DeleteFolder(ctx, wrapperspb.String(id)); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListFolders(ctx context.Context) ([]*models.FolderResponse, error) {
	resp, err := s.client.ListFolders(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}

	folders, err := pb.FoldersFromList(resp)
	if err != nil {
		return nil, fmt.Errorf("decode folder list: %w", err)
	}

	result := make([]*models.FolderResponse, 0, len(folders))
	for _, f := range folders {
		r, err := toFolderResponse(f)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func folderResponse(msg *structpb.Struct) (*models.FolderResponse, error) {
	f, err := pb.FolderFromStruct(msg)
	if err != nil {
		return nil, fmt.Errorf("decode folder: %w", err)
	}
	return toFolderResponse(f)
}

func toFolderResponse(f pb.Folder) (*models.FolderResponse, error) {
	name, err := models.ParseEncString(f.Name)
	if err != nil {
		return nil, fmt.Errorf("folder %s: %w", f.ID, err)
	}
	return &models.FolderResponse{ID: f.ID, Name: name, RevisionDate: f.RevisionDate}, nil
}
