package core

import (
	"context"
	"fmt"

	"voice-catalog-go/internal/logger"
	"voice-catalog-go/internal/record"
	"voice-catalog-go/internal/store"
)

// SessionService owns the two recording phases and the merge semantics
// between them. Session identity is threaded explicitly through every call;
// the service holds no "current session" state of its own.
type SessionService struct {
	store    store.Store
	business *BusinessExtractor
	products *ProductExtractor
	log      *logger.Logger
}

func NewSessionService(st store.Store, business *BusinessExtractor, products *ProductExtractor) *SessionService {
	return &SessionService{
		store:    st,
		business: business,
		products: products,
		log:      logger.New(),
	}
}

// ProcessBusinessTranscript runs the business pipeline without touching any
// session. Always structurally valid even if every field comes back empty.
func (s *SessionService) ProcessBusinessTranscript(ctx context.Context, transcript string) record.BusinessRecord {
	return s.business.Extract(ctx, transcript)
}

// ProcessProductTranscript runs the product pipeline without touching any
// session. The result may be empty but is never nil.
func (s *SessionService) ProcessProductTranscript(ctx context.Context, transcript string) []record.ProductRecord {
	return s.products.Extract(ctx, transcript)
}

// StartBusinessSession is phase 1: extract a business record from the
// transcript and persist it under a brand-new session identity.
func (s *SessionService) StartBusinessSession(ctx context.Context, transcript string) (string, record.BusinessRecord, error) {
	rec := s.business.Extract(ctx, transcript)
	id, err := s.store.Create(rec)
	if err != nil {
		return "", record.BusinessRecord{}, fmt.Errorf("failed to create session: %w", err)
	}
	s.log.WithField("session_id", id).Info("business session created")
	return id, rec, nil
}

// AddProducts is phase 2: extract products and append them to the session's
// existing list. An empty session id means no business info was captured
// yet; a shell session with an all-empty business record is created first,
// so products can be recorded before any phase-1 upload.
func (s *SessionService) AddProducts(ctx context.Context, sessionID string, transcript string) (string, record.BusinessRecord, error) {
	if sessionID == "" {
		id, err := s.store.Create(record.EmptyBusiness())
		if err != nil {
			return "", record.BusinessRecord{}, fmt.Errorf("failed to create shell session: %w", err)
		}
		s.log.WithField("session_id", id).Info("shell session created for products-only flow")
		sessionID = id
	}

	products := s.products.Extract(ctx, transcript)
	rec, err := s.store.AppendProducts(sessionID, products)
	if err != nil {
		return "", record.BusinessRecord{}, fmt.Errorf("failed to append products to session %s: %w", sessionID, err)
	}
	s.log.WithField("session_id", sessionID).WithField("new_products", len(products)).Info("products appended")
	return sessionID, rec, nil
}

// Replace is the edit-and-save operation: a full overwrite of the stored
// record that bypasses both extractors.
func (s *SessionService) Replace(sessionID string, rec record.BusinessRecord) (record.BusinessRecord, error) {
	return s.store.Replace(sessionID, rec)
}

func (s *SessionService) Get(sessionID string) (record.BusinessRecord, error) {
	return s.store.Load(sessionID)
}

func (s *SessionService) List() ([]store.Session, error) {
	return s.store.List()
}

func (s *SessionService) Delete(sessionID string) (bool, error) {
	return s.store.Delete(sessionID)
}
