package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/itnewcomer/Memento/internal/common"
	"github.com/itnewcomer/Memento/internal/logging"
	"github.com/itnewcomer/Memento/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer(secret string) *GRPCServer {
	return &GRPCServer{logger: logging.NewNop(), jwtSecret: []byte(secret)}
}

var dailyInfo = &grpc.UnaryServerInfo{FullMethod: "/" + ServiceName + "/DailySeries"}

func TestInterceptor_HealthAllowedWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	called := false
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called || resp != "ok" {
		t.Fatalf("handler not called or wrong resp: %v", resp)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret")

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, dailyInfo, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer("secret")

	md := metadata.New(map[string]string{common.AccessTokenHeaderName: "not-a-valid-jwt"})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, dailyInfo, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_ValidToken_SetsSubject(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)

	token, err := auth.GenerateToken("grafana", []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var got any
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got = ctx.Value(SubjectKey)
		return "ok", nil
	}

	if _, err := s.accessTokenInterceptor(ctx, nil, dailyInfo, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "grafana" {
		t.Fatalf("subject not propagated: got %v", got)
	}
}

func TestParseAnchor(t *testing.T) {
	for _, ok := range []string{"2024-01-05", "2024-01", "2024"} {
		if _, err := parseAnchor(ok); err != nil {
			t.Fatalf("parseAnchor(%q): %v", ok, err)
		}
	}
	for _, bad := range []string{"", "24", "2024-13", "abcd"} {
		if _, err := parseAnchor(bad); err == nil {
			t.Fatalf("parseAnchor(%q) should fail", bad)
		}
	}
}
