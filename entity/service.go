package entity

import (
	"context"

	"github.com/kbukum/apistruct/client"
)

// Service pairs a schema with an endpoint client so that calls return
// entities directly.
//
//	users := entity.Service{Schema: User, Client: usersClient}
//	u, err := users.Get(ctx, 42)
//	if err == nil && u.IsFailure() {
//	    log.Println(u.Err().Status)
//	}
type Service struct {
	Schema *Schema
	Client *client.Client
}

// Get fetches one entity. args are passed to Client.Get.
func (s Service) Get(ctx context.Context, args ...any) (*Entity, error) {
	return s.Schema.FromResult(s.Client.Get(ctx, args...))
}

// List fetches a collection. A failed call returns the *result.ClientError.
func (s Service) List(ctx context.Context, args ...any) (*Collection, error) {
	return s.Schema.CollectionFromResult(s.Client.Get(ctx, args...))
}

// Create posts body and returns the created entity.
func (s Service) Create(ctx context.Context, body any, args ...any) (*Entity, error) {
	return s.Schema.FromResult(s.Client.Post(ctx, append(args[:len(args):len(args)], client.WithBody(body))...))
}

// Update patches body and returns the updated entity.
func (s Service) Update(ctx context.Context, body any, args ...any) (*Entity, error) {
	return s.Schema.FromResult(s.Client.Patch(ctx, append(args[:len(args):len(args)], client.WithBody(body))...))
}

// Delete deletes and returns the response entity, empty when the body is.
func (s Service) Delete(ctx context.Context, args ...any) (*Entity, error) {
	return s.Schema.FromResult(s.Client.Delete(ctx, args...))
}
