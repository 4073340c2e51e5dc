// Package pipeline sequences one full synchronization run: credentials,
// permission extraction, record extraction, transformation and the single
// full-replace upload.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/suitesync/suitesync/internal/config"
	"github.com/suitesync/suitesync/internal/db/controller/credential"
	"github.com/suitesync/suitesync/internal/db/models"
	"github.com/suitesync/suitesync/internal/glean"
	"github.com/suitesync/suitesync/internal/netsuite"
	"github.com/suitesync/suitesync/internal/permindex"
)

// Service runs synchronization pipelines against the stored credential
// bundle.
type Service struct {
	cfg *config.Config
	db  *gorm.DB

	// Endpoint overrides for tests and sandbox accounts. Empty means the
	// account-derived production URL.
	NetSuiteBaseURL string
	GleanBaseURL    string
}

// New creates a pipeline service.
func New(cfg *config.Config, db *gorm.DB) *Service {
	return &Service{cfg: cfg, db: db}
}

// Result reports the outcome of one run to the triggering layer.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// Run executes one full document synchronization: extract permission grants
// and the active user list, build the access index, extract the nine record
// types, transform every surviving record and submit the whole batch as a
// single full-replace upload.
func (s *Service) Run(ctx context.Context) Result {
	creds, err := credential.Oldest(s.db)
	if err != nil {
		if errors.Is(err, credential.ErrNoCredentials) {
			return Result{Success: false, Error: "no credentials found in the database"}
		}

		return failureResult("load credentials", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Sync.RunDeadline())
	defer cancel()

	ns := s.netsuiteClient(creds)

	// Both permission extractions must complete before any transform reads
	// the index.
	grants, partial, err := ns.Run(ctx, netsuite.PermissionGrantsQuery)
	if err != nil {
		return failureResult("extract permission grants", err)
	}

	if partial {
		log.Warn().Int("rows", len(grants)).Msg("permission grant extraction incomplete")
	}

	userRows, partial, err := ns.Run(ctx, netsuite.ActiveUsersQuery)
	if err != nil {
		return failureResult("extract active users", err)
	}

	if partial {
		log.Warn().Int("rows", len(userRows)).Msg("active user extraction incomplete")
	}

	idx := permindex.Build(grants)
	allPrincipals := permindex.BuildAllPrincipals(userRows)

	// The nine record extractions are independent. Run them over a bounded
	// pool and join before transformation; a failed first page empties that
	// record type's contribution but does not abort the others.
	results := make([][]netsuite.Row, len(netsuite.RecordQueries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Sync.Workers)

	for i, def := range netsuite.RecordQueries {
		g.Go(func() error {
			rows, partial, err := ns.Run(gctx, def.Query)
			if err != nil {
				log.Error().Err(err).Str("object_type", def.ObjectType).Msg("record extraction failed")
				return nil
			}

			if partial {
				log.Warn().Str("object_type", def.ObjectType).Int("rows", len(rows)).Msg("record extraction incomplete")
			}

			results[i] = rows

			return nil
		})
	}

	_ = g.Wait() // workers never return errors; the barrier is what matters

	var docs []glean.Document

	for i, def := range netsuite.RecordQueries {
		records := netsuite.Dedupe(results[i])
		for _, record := range records {
			docs = append(docs, transformRecord(record, def, creds.NetSuiteAccountID, s.cfg.Sync.Datasource, idx, allPrincipals))
		}

		log.Info().Str("object_type", def.ObjectType).Int("documents", len(records)).Msg("record type transformed")
	}

	if err := s.gleanClient(creds).BulkIndexDocuments(ctx, docs); err != nil {
		return failureResult("bulk document upload failed", err)
	}

	log.Info().Int("documents", len(docs)).Msg("bulk document upload accepted")

	return Result{
		Success: true,
		Message: fmt.Sprintf("indexed %d documents across %d record types", len(docs), len(netsuite.RecordQueries)),
	}
}

// IndexUsers extracts the active employees and submits them to the user
// index, so that document permissions can be resolved against known users.
func (s *Service) IndexUsers(ctx context.Context) Result {
	creds, err := credential.Oldest(s.db)
	if err != nil {
		if errors.Is(err, credential.ErrNoCredentials) {
			return Result{Success: false, Error: "no credentials found in the database"}
		}

		return failureResult("load credentials", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Sync.RunDeadline())
	defer cancel()

	rows, partial, err := s.netsuiteClient(creds).Run(ctx, netsuite.EmployeeEmailQuery)
	if err != nil {
		return failureResult("extract employees", err)
	}

	if partial {
		log.Warn().Int("rows", len(rows)).Msg("employee extraction incomplete")
	}

	users := make([]glean.User, 0, len(rows))

	for _, row := range rows {
		email := row.String("email")
		if email == "" {
			continue
		}

		users = append(users, glean.User{Email: email, IsActive: "true"})
	}

	if len(users) == 0 {
		return Result{Success: true, Message: "no employees with email addresses found to index"}
	}

	if err := s.gleanClient(creds).BulkIndexUsers(ctx, users); err != nil {
		return failureResult("bulk user upload failed", err)
	}

	log.Info().Int("users", len(users)).Msg("bulk user upload accepted")

	return Result{
		Success: true,
		Message: fmt.Sprintf("submitted %d users for indexing", len(users)),
	}
}

func (s *Service) netsuiteClient(creds *models.Credential) *netsuite.Client {
	opts := []netsuite.Option{
		netsuite.WithTimeout(s.cfg.Sync.RequestTimeout()),
		netsuite.WithRetries(s.cfg.Sync.PageRetries),
	}

	if s.NetSuiteBaseURL != "" {
		opts = append(opts, netsuite.WithBaseURL(s.NetSuiteBaseURL))
	}

	return netsuite.NewClient(
		creds.NetSuiteAccountID,
		creds.NetSuiteConsumerKey,
		creds.NetSuiteConsumerSecret,
		creds.NetSuiteToken,
		creds.NetSuiteTokenSecret,
		opts...,
	)
}

func (s *Service) gleanClient(creds *models.Credential) *glean.Client {
	opts := []glean.Option{
		glean.WithTimeout(s.cfg.Sync.RequestTimeout()),
		glean.WithRetries(s.cfg.Sync.PageRetries),
	}

	if s.GleanBaseURL != "" {
		opts = append(opts, glean.WithBaseURL(s.GleanBaseURL))
	}

	return glean.NewClient(creds.GleanAccount, creds.GleanToken, s.cfg.Sync.Datasource, opts...)
}

// failureResult builds a run result separating the human readable message
// from machine usable diagnostic detail (raw response body).
func failureResult(msg string, err error) Result {
	res := Result{Success: false}

	var (
		sub *glean.SubmissionError
		req *netsuite.RequestError
	)

	switch {
	case errors.As(err, &sub):
		res.Error = fmt.Sprintf("%s: status %d", msg, sub.Status)
		res.Details = sub.Body
	case errors.As(err, &req):
		res.Error = fmt.Sprintf("%s: status %d", msg, req.Status)
		res.Details = req.Body
	default:
		res.Error = fmt.Sprintf("%s: %v", msg, err)
	}

	return res
}
