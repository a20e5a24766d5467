package agentrpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/pkg/agentrpc/agentrpcpb"
	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/services"
)

// Server adapts the StreamStatus RPC onto the same ingestion path the
// HTTP handlers use; no distribution semantics live here.
type Server struct {
	agentrpcpb.UnimplementedAgentStreamServer

	cfg      *config.AgentRPCConfig
	agents   *services.AgentService
	tasks    *services.TaskService
	progress *services.ProgressService
	results  *services.ResultService
	logger   *slog.Logger

	grpcServer *grpc.Server
}

// NewServer creates the streaming adapter.
func NewServer(
	cfg *config.AgentRPCConfig,
	agents *services.AgentService,
	tasks *services.TaskService,
	progress *services.ProgressService,
	results *services.ResultService,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:      cfg,
		agents:   agents,
		tasks:    tasks,
		progress: progress,
		results:  results,
		logger:   logger,
	}
}

// Start listens on the configured port and serves until Stop. Blocking.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("agentrpc: failed to listen: %w", err)
	}
	s.grpcServer = grpc.NewServer()
	agentrpcpb.RegisterAgentStreamServer(s.grpcServer, s)
	s.logger.Info("agent rpc listening", "port", s.cfg.Port)
	return s.grpcServer.Serve(ln)
}

// Stop gracefully drains open streams.
func (s *Server) Stop() {
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}

// StreamStatus authenticates the stream once from its metadata, then
// ingests frames until the agent closes its side. Each frame is answered
// with an Ack; a rejected frame does not tear the stream down, matching the
// HTTP contract where a 409 leaves the connection reusable.
func (s *Server) StreamStatus(stream agentrpcpb.AgentStream_StreamStatusServer) error {
	ag, err := s.authenticate(stream.Context())
	if err != nil {
		return err
	}

	for {
		frame, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		ack := s.ingestFrame(stream.Context(), ag, frame)
		if err := stream.Send(ack); err != nil {
			return err
		}
	}
}

// authenticate resolves the csa bearer token from stream metadata.
func (s *Server) authenticate(ctx context.Context) (*ent.Agent, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing bearer token")
	}
	token := values[0]
	const prefix = "Bearer "
	if len(token) > len(prefix) && token[:len(prefix)] == prefix {
		token = token[len(prefix):]
	}
	ag, err := s.agents.Authenticate(ctx, token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid bearer token")
	}
	return ag, nil
}

// ingestFrame runs one frame through the progress ingestor (and the result
// ingestor, when cracks ride along), converting the outcome to an Ack.
func (s *Server) ingestFrame(ctx context.Context, ag *ent.Agent, frame *agentrpcpb.StatusFrame) *agentrpcpb.Ack {
	ack := &agentrpcpb.Ack{TaskId: frame.TaskId}

	t, err := s.tasks.GetWithAgent(ctx, frame.TaskId)
	if err != nil {
		return rejected(ack, err)
	}

	summary, err := s.progress.Submit(ctx, t, ag.ID, frameToDTO(frame))
	if err != nil {
		return rejected(ack, err)
	}
	ack.Accepted = true
	ack.ProgressPercentage = summary.Percentage
	if summary.EstimatedFinish != nil {
		ack.EstimatedFinishUnix = summary.EstimatedFinish.Unix()
	}

	if len(frame.Cracks) > 0 {
		entries := make([]models.CrackEntry, 0, len(frame.Cracks))
		for _, crack := range frame.Cracks {
			entries = append(entries, models.CrackEntry{
				Timestamp: time.Unix(crack.TimestampUnix, 0),
				Hash:      crack.Hash,
				PlainText: crack.PlainText,
			})
		}
		newCracks, err := s.results.Submit(ctx, t, ag.ID, entries)
		if err != nil {
			return rejected(ack, err)
		}
		ack.NewCracks = int32(newCracks)
	}

	return ack
}

// rejected classifies the ingestion error the way the HTTP layer does:
// state conflicts tell the agent to re-sync, everything else is opaque.
func rejected(ack *agentrpcpb.Ack, err error) *agentrpcpb.Ack {
	ack.Accepted = false
	switch {
	case errors.Is(err, services.ErrStateConflict):
		ack.Error = "conflict"
	case errors.Is(err, services.ErrNotFound):
		ack.Error = "not found"
	default:
		slog.Error("agentrpc: frame ingestion failed", "task_id", ack.TaskId, "error", err)
		ack.Error = "error"
	}
	return ack
}

// frameToDTO converts the protobuf frame to the shared wire DTO so both
// transports feed identical input into the progress ingestor.
func frameToDTO(frame *agentrpcpb.StatusFrame) models.HashcatStatusDTO {
	devices := make([]models.DeviceStatusDTO, 0, len(frame.Devices))
	for _, d := range frame.Devices {
		devices = append(devices, models.DeviceStatusDTO{
			ID:          int(d.Id),
			Name:        d.Name,
			Type:        d.Type,
			Speed:       d.Speed,
			Utilization: int(d.Utilization),
			Temperature: int(d.Temperature),
		})
	}
	dto := models.HashcatStatusDTO{
		Session:         frame.Session,
		StatusCode:      int(frame.Status),
		Target:          frame.Target,
		Progress:        [2]int64{frame.ProgressDone, frame.ProgressTotal},
		RestorePoint:    frame.RestorePoint,
		RecoveredHashes: frame.RecoveredHashes,
		RecoveredSalts:  frame.RecoveredSalts,
		Rejected:        frame.Rejected,
		Devices:         devices,
		HashcatGuess:    frame.HashcatGuess,
	}
	if frame.TimeStartUnix > 0 {
		ts := time.Unix(frame.TimeStartUnix, 0)
		dto.TimeStart = &ts
	}
	if frame.EstimatedStopUnix > 0 {
		es := time.Unix(frame.EstimatedStopUnix, 0)
		dto.EstimatedStop = &es
	}
	return dto
}
