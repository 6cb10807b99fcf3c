package locator

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/locator-seal/internal/domain/seal"
	pb "github.com/oshokin/locator-seal/internal/pb/v1"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	SealBaseLocator(ctx context.Context, actor *domain.Actor, baseLocator string) (*domain.Record, error)
	GetSealState(ctx context.Context) *domain.Record
}

// Server implements the LocatorService gRPC API.
type Server struct {
	pb.UnimplementedLocatorServiceServer

	// service provides the business logic for seal operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// SealBaseLocator performs the one-time locator assignment.
// A second independent attempt returns FailedPrecondition: the rejection is
// permanent, so callers must not retry it.
func (s *Server) SealBaseLocator(ctx context.Context, req *pb.SealBaseLocatorRequest) (*pb.SealStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	if req.GetBaseLocator() == "" {
		return nil, status.Error(codes.InvalidArgument, "base locator is required")
	}

	actor := toDomainActor(req.GetActor())

	record, err := s.service.SealBaseLocator(ctx, actor, req.GetBaseLocator())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadySealed) {
			return nil, status.Error(codes.FailedPrecondition, "base locator is already sealed")
		}

		return nil, status.Error(codes.Internal, "unable to seal base locator")
	}

	return toProtoRecord(record), nil
}

// GetSealState returns the current seal state.
func (s *Server) GetSealState(ctx context.Context, _ *pb.GetSealStateRequest) (*pb.SealStateResponse, error) {
	record := s.service.GetSealState(ctx)

	return toProtoRecord(record), nil
}

// toDomainActor converts a protobuf SystemActor to a domain Actor.
func toDomainActor(actor *pb.SystemActor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

// toProtoRecord converts a domain.Record object to a pb.SealStateResponse protobuf message.
func toProtoRecord(record *domain.Record) *pb.SealStateResponse {
	if record == nil {
		return &pb.SealStateResponse{}
	}

	var sealedAt *timestamppb.Timestamp
	if !record.SealedAt.IsZero() {
		sealedAt = timestamppb.New(record.SealedAt)
	}

	var actor *pb.SystemActor
	if record.SealedBy != nil {
		actor = &pb.SystemActor{
			Hostname: record.SealedBy.Hostname,
			Username: record.SealedBy.Username,
		}
	}

	return &pb.SealStateResponse{
		SealedAt:    sealedAt,
		SealedBy:    actor,
		BaseLocator: record.BaseLocator,
		IsSealed:    record.Sealed,
		SealId:      record.SealID,
	}
}
