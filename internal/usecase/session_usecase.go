package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sanish-bhagat/Health-Sathi/internal/converter"
	"github.com/sanish-bhagat/Health-Sathi/internal/delivery/dto"
	"github.com/sanish-bhagat/Health-Sathi/internal/domain/entity"
	"github.com/sanish-bhagat/Health-Sathi/internal/domain/repository"
	"github.com/sanish-bhagat/Health-Sathi/pkg/token"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNoActiveSession = errors.New("no active session")
	ErrEmptyUpdate     = errors.New("update contains no fields")
)

// Session is the process-wide record of which identity is active.
type Session struct {
	Role    entity.UserRole
	UserID  string
	Name    string
	Profile *entity.User
}

// SessionUsecase is the synchronization layer: the single holder of
// in-memory application state, mediating every read and write between
// UI-facing actions and the local store.
//
// The in-memory state is a cache with write-through intent, not the
// authority — the store owns the durable copy. User-visible mutations
// are optimistic: memory is updated synchronously, the store write
// runs in the background, and its outcome is observable through the
// returned PendingWrite. A failed write leaves memory ahead of the
// store; the affected entity stays marked dirty until a later write
// for it succeeds.
//
// All state access is serialized by a mutex, since unlike the original
// single-threaded environment, callers here may be truly concurrent.
type SessionUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	reportRepo   repository.ReportRepository
	tokenService *token.Service

	mu          sync.Mutex
	session     Session
	reports     []entity.HealthReport
	doctors     []entity.User
	loading     int
	activePanel string
	dirty       map[string]bool
}

func NewSessionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	reportRepo repository.ReportRepository,
	tokenService *token.Service,
) *SessionUsecase {
	return &SessionUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		reportRepo:   reportRepo,
		tokenService: tokenService,
		dirty:        make(map[string]bool),
	}
}

// SetSession replaces the session state wholesale. No store interaction.
// The profile is copied on the way in so the caller's pointer never
// aliases mutex-guarded state.
func (s *SessionUsecase) SetSession(role entity.UserRole, name, userID string, profile *entity.User) {
	if profile != nil {
		cp := *profile
		profile = &cp
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{Role: role, UserID: userID, Name: name, Profile: profile}
}

// ClearSession drops the active identity and everything loaded for it.
func (s *SessionUsecase) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{Role: entity.RoleGuest}
	s.reports = nil
	s.dirty = make(map[string]bool)
}

// RestoreSession validates a session token issued at login and reloads
// the identity it names from the store.
func (s *SessionUsecase) RestoreSession(ctx context.Context, tokenString string) error {
	claims, err := s.tokenService.Validate(tokenString)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(s.db.WithContext(ctx), claims.UserID)
	if err != nil {
		s.log.Warnf("Failed to restore session: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	s.SetSession(user.Role, user.Name, user.ID, user)
	return nil
}

// Session returns a copy of the current session state. The profile is
// copied too, so a returned snapshot never races with a later profile
// update mutating the held struct.
func (s *SessionUsecase) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session
	if sess.Profile != nil {
		cp := *sess.Profile
		sess.Profile = &cp
	}
	return sess
}

// Reports returns a copy of the currently held report collection.
func (s *SessionUsecase) Reports() []entity.HealthReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.HealthReport, len(s.reports))
	copy(out, s.reports)
	return out
}

// Doctors returns a copy of the cached doctor list.
func (s *SessionUsecase) Doctors() []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.User, len(s.doctors))
	copy(out, s.doctors)
	return out
}

// Busy reports whether any report fetch is in flight.
func (s *SessionUsecase) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

// Dirty reports whether an optimistic mutation for the entity has not
// yet been confirmed by the store.
func (s *SessionUsecase) Dirty(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty[id]
}

// SetActivePanel and ActivePanel pass the UI panel selection through;
// the state holder does not interpret it.
func (s *SessionUsecase) SetActivePanel(panel string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activePanel = panel
}

func (s *SessionUsecase) ActivePanel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activePanel
}

// LoadReports replaces the held report collection with a fresh fetch,
// selecting the strategy by role: patients see reports they own,
// doctors see reports routed to them. A fetch failure leaves the held
// collection untouched — stale, not corrupted — and is returned to the
// caller, so an empty result and a failed fetch are distinct signals.
func (s *SessionUsecase) LoadReports(ctx context.Context) error {
	s.mu.Lock()
	sess := s.session
	if sess.UserID == "" && sess.Role != entity.RoleDoctor {
		s.mu.Unlock()
		return nil
	}
	// Counted, not a flag: a finishing fetch must not clear the busy
	// signal while an overlapping fetch is still in flight.
	s.loading++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading--
		s.mu.Unlock()
	}()

	var (
		reports []entity.HealthReport
		err     error
	)
	if sess.Role == entity.RoleDoctor {
		reports, err = s.reportRepo.FindByTargetDoctorID(s.db.WithContext(ctx), sess.UserID)
	} else {
		reports, err = s.reportRepo.FindByUserID(s.db.WithContext(ctx), sess.UserID)
	}
	if err != nil {
		s.log.Warnf("Failed to load reports: %+v", err)
		return fmt.Errorf("load reports: %w", err)
	}

	s.mu.Lock()
	s.reports = reports
	s.mu.Unlock()
	return nil
}

// LoadDoctors refreshes the cached list of doctor profiles. On failure
// the previous cache is kept and the error is returned.
func (s *SessionUsecase) LoadDoctors(ctx context.Context) error {
	doctors, err := s.userRepo.FindByRole(s.db.WithContext(ctx), entity.RoleDoctor)
	if err != nil {
		s.log.Warnf("Failed to load doctors: %+v", err)
		return fmt.Errorf("load doctors: %w", err)
	}

	s.mu.Lock()
	s.doctors = doctors
	s.mu.Unlock()
	return nil
}

// AddReportLocal prepends a report to the in-memory collection without
// touching the store. Used for immediate feedback after an externally
// performed save.
func (s *SessionUsecase) AddReportLocal(report entity.HealthReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append([]entity.HealthReport{report}, s.reports...)
}

// UpdateReportStatus optimistically rewrites the matching in-memory
// report's status and notes, then issues the store merge-update in the
// background. The in-memory change is visible to readers before the
// store write resolves.
func (s *SessionUsecase) UpdateReportStatus(ctx context.Context, id string, status entity.ReportStatus, notes string) *PendingWrite {
	fields := map[string]any{"status": status}
	if notes != "" {
		fields["doctor_notes"] = notes
	}

	s.mu.Lock()
	for i := range s.reports {
		if s.reports[i].ID != id {
			continue
		}
		s.reports[i].Status = status
		if notes != "" {
			s.reports[i].DoctorNotes = notes
		}
		break
	}
	s.dirty[id] = true
	s.mu.Unlock()

	return s.persist(ctx, id, func(db *gorm.DB) error {
		return s.reportRepo.MergeUpdate(db, id, fields)
	})
}

// UpdateProfile optimistically merges a partial update into the active
// profile (and the display name, if it changed), then issues the store
// merge-update in the background.
func (s *SessionUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*PendingWrite, error) {
	fields := converter.ProfileUpdateToFields(req)
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	s.mu.Lock()
	if s.session.UserID == "" {
		s.mu.Unlock()
		return nil, ErrNoActiveSession
	}
	id := s.session.UserID
	if s.session.Profile != nil {
		applyProfileFields(s.session.Profile, fields)
	}
	if name, ok := fields["name"].(string); ok {
		s.session.Name = name
	}
	s.dirty[id] = true
	s.mu.Unlock()

	return s.persist(ctx, id, func(db *gorm.DB) error {
		return s.userRepo.MergeUpdate(db, id, fields)
	}), nil
}

// persist runs the durable half of an optimistic mutation. The write
// is detached from the caller's cancellation: once issued it runs to
// completion, success or failure. Success clears the dirty flag;
// failure leaves it set so the divergence stays observable.
func (s *SessionUsecase) persist(ctx context.Context, id string, apply func(*gorm.DB) error) *PendingWrite {
	pw := newPendingWrite()
	db := s.db.WithContext(context.WithoutCancel(ctx))

	go func() {
		err := apply(db)
		s.mu.Lock()
		if err == nil {
			delete(s.dirty, id)
		}
		s.mu.Unlock()
		if err != nil {
			s.log.Warnf("Failed to persist update for %s: %+v", id, err)
		}
		pw.resolve(err)
	}()

	return pw
}

// applyProfileFields mirrors the store's shallow merge onto the cached
// profile. Keys are column names, matching what MergeUpdate receives.
func applyProfileFields(user *entity.User, fields map[string]any) {
	for key, value := range fields {
		str, ok := value.(string)
		if !ok {
			continue
		}
		switch key {
		case "name":
			user.Name = str
		case "specialization":
			user.Specialization = str
		case "blood_group":
			user.BloodGroup = str
		case "age":
			user.Age = str
		case "height":
			user.Height = str
		case "weight":
			user.Weight = str
		case "phone":
			user.Phone = str
		case "dob":
			user.DOB = str
		}
	}
}
