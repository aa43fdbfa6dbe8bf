// Package store is the in-memory backing store of the dev server. It exists
// so the console can be exercised end to end without the real platform
// backend; nothing survives a restart.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jobboardhq/backoffice/internal/client/models"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

type Store struct {
	mu sync.RWMutex

	users         map[int64]*models.User
	passwords     map[string][]byte
	offers        map[int64]*models.Offer
	skillTypes    map[int64]*models.SkillType
	roles         map[int64]*models.RoleDefinition
	notifications map[int64]*models.Notification

	nextID int64
}

func New() *Store {
	return &Store{
		users:         make(map[int64]*models.User),
		passwords:     make(map[string][]byte),
		offers:        make(map[int64]*models.Offer),
		skillTypes:    make(map[int64]*models.SkillType),
		roles:         make(map[int64]*models.RoleDefinition),
		notifications: make(map[int64]*models.Notification),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// Seed loads a small fixed data set: one account per role plus a few rows
// in every section. All seeded accounts share the given password.
func (s *Store) Seed(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	seedUsers := []*models.User{
		{Email: "admin@jobboard.example", FullName: "Ada Admin", Role: models.RoleAdmin,
			Active: true, VerificationStatus: models.VerificationVerified},
		{Email: "recruiter@jobboard.example", FullName: "Rei Recruiter", Role: models.RoleRecruiter,
			Active: true, VerificationStatus: models.VerificationVerified, CompanyName: "Acme Hiring"},
		{Email: "seeker@jobboard.example", FullName: "Sam Seeker", Role: models.RoleJobSeeker,
			Active: true, VerificationStatus: models.VerificationPending, CurrentTitle: "Backend Engineer"},
	}
	for _, u := range seedUsers {
		u.ID = s.id()
		u.CreatedAt = now
		u.UpdatedAt = now
		s.users[u.ID] = u
		s.passwords[u.Email] = hash
	}

	for _, o := range []*models.Offer{
		{Title: "Senior Go Engineer", CompanyName: "Acme Hiring", Location: "Riga", Status: "ACTIVE"},
		{Title: "Frontend Developer", CompanyName: "Acme Hiring", Location: "Remote", Status: "ACTIVE", RemoteAllowed: true},
		{Title: "Data Analyst", CompanyName: "Beta Corp", Location: "Berlin", Status: "DRAFT"},
	} {
		o.ID = s.id()
		o.RecruiterID = seedUsers[1].ID
		o.CreatedAt = now
		s.offers[o.ID] = o
	}

	for _, st := range []*models.SkillType{
		{Name: "Go", Category: "LANGUAGE", Active: true},
		{Name: "PostgreSQL", Category: "DATABASE", Active: true},
		{Name: "Kubernetes", Category: "INFRASTRUCTURE", Active: false},
	} {
		st.ID = s.id()
		s.skillTypes[st.ID] = st
	}

	for _, r := range []*models.RoleDefinition{
		{Name: "ADMIN", DisplayName: "Administrator", Permissions: []string{"*"}, Active: true},
		{Name: "RECRUITER", DisplayName: "Recruiter", Permissions: []string{"offers:write"}, Active: true},
		{Name: "JOB_SEEKER", DisplayName: "Job Seeker", Permissions: []string{"offers:read"}, Active: true},
	} {
		r.ID = s.id()
		s.roles[r.ID] = r
	}

	for _, n := range []*models.Notification{
		{UserID: seedUsers[0].ID, Title: "New recruiter", Message: "Rei Recruiter awaits verification"},
		{UserID: seedUsers[0].ID, Title: "Offer reported", Message: "Offer 'Data Analyst' was reported"},
	} {
		n.ID = s.id()
		n.CreatedAt = now
		s.notifications[n.ID] = n
	}

	return nil
}

// Authenticate checks the password and returns the account. Deactivated
// accounts cannot sign in.
func (s *Store) Authenticate(email, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hash, ok := s.passwords[email]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	for _, u := range s.users {
		if u.Email == email {
			if !u.Active {
				return nil, ErrInvalidCredentials
			}
			out := *u
			return &out, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *Store) CreateUser(u *models.User, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.passwords[u.Email]; taken {
		return nil, ErrEmailTaken
	}

	now := time.Now().UTC()
	stored := *u
	stored.ID = s.id()
	stored.Active = true
	stored.IsFirstLogin = true
	if stored.VerificationStatus == "" {
		stored.VerificationStatus = models.VerificationPending
	}
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.users[stored.ID] = &stored
	s.passwords[stored.Email] = hash

	out := stored
	return &out, nil
}

func (s *Store) Users() []models.User {
	return s.usersWhere(func(*models.User) bool { return true })
}

func (s *Store) Recruiters() []models.User {
	return s.usersWhere(func(u *models.User) bool { return u.Role == models.RoleRecruiter })
}

func (s *Store) JobSeekers() []models.User {
	return s.usersWhere(func(u *models.User) bool { return u.Role == models.RoleJobSeeker })
}

func (s *Store) usersWhere(keep func(*models.User) bool) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if keep(u) {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetUser(id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

func (s *Store) UpdateUser(id int64, in *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	if in.FullName != "" {
		u.FullName = in.FullName
	}
	if in.PhoneNumber != "" {
		u.PhoneNumber = in.PhoneNumber
	}
	if in.VerificationStatus != "" {
		u.VerificationStatus = in.VerificationStatus
	}
	u.UpdatedAt = time.Now().UTC()

	out := *u
	return &out, nil
}

func (s *Store) SetUserActive(id int64, active bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.Active = active
	u.UpdatedAt = time.Now().UTC()

	out := *u
	return &out, nil
}

func (s *Store) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.passwords, u.Email)
	delete(s.users, id)
	return nil
}

// Offers returns one server-side page, mirroring how the platform paginates
// the offer endpoints.
func (s *Store) Offers(page, size int) models.Paginated[models.Offer] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		all = append(all, *o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return models.PaginateSlice(all, page, size)
}

func (s *Store) GetOffer(id int64) (*models.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.offers[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *o
	return &out, nil
}

func (s *Store) CreateOffer(o *models.Offer) *models.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *o
	stored.ID = s.id()
	stored.CreatedAt = time.Now().UTC()
	s.offers[stored.ID] = &stored

	out := stored
	return &out
}

func (s *Store) UpdateOffer(id int64, in *models.Offer) (*models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.offers[id]
	if !ok {
		return nil, ErrNotFound
	}
	updated := *in
	updated.ID = id
	updated.CreatedAt = o.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	s.offers[id] = &updated

	out := updated
	return &out, nil
}

func (s *Store) DeleteOffer(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.offers[id]; !ok {
		return ErrNotFound
	}
	delete(s.offers, id)
	return nil
}

func (s *Store) SkillTypes() []models.SkillType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SkillType, 0, len(s.skillTypes))
	for _, st := range s.skillTypes {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) CreateSkillType(st *models.SkillType) *models.SkillType {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *st
	stored.ID = s.id()
	s.skillTypes[stored.ID] = &stored

	out := stored
	return &out
}

func (s *Store) UpdateSkillType(id int64, in *models.SkillType) (*models.SkillType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.skillTypes[id]; !ok {
		return nil, ErrNotFound
	}
	updated := *in
	updated.ID = id
	s.skillTypes[id] = &updated

	out := updated
	return &out, nil
}

func (s *Store) DeleteSkillType(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.skillTypes[id]; !ok {
		return ErrNotFound
	}
	delete(s.skillTypes, id)
	return nil
}

func (s *Store) Roles() []models.RoleDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.RoleDefinition, 0, len(s.roles))
	for _, r := range s.roles {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) CreateRole(r *models.RoleDefinition) *models.RoleDefinition {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *r
	stored.ID = s.id()
	s.roles[stored.ID] = &stored

	out := stored
	return &out
}

func (s *Store) UpdateRole(id int64, in *models.RoleDefinition) (*models.RoleDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roles[id]; !ok {
		return nil, ErrNotFound
	}
	updated := *in
	updated.ID = id
	s.roles[id] = &updated

	out := updated
	return &out, nil
}

func (s *Store) DeleteRole(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roles[id]; !ok {
		return ErrNotFound
	}
	delete(s.roles, id)
	return nil
}

func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) MarkNotificationRead(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return ErrNotFound
	}
	n.IsRead = true
	return nil
}

func (s *Store) DeleteNotification(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notifications[id]; !ok {
		return ErrNotFound
	}
	delete(s.notifications, id)
	return nil
}
