package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/database"
	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/pkg/mailer"
)

// memStore is an in-memory table that understands database.Filter
type memStore[T any] struct {
	mu      sync.Mutex
	items   []T
	id      func(*T) string
	columns func(*T) map[string]interface{}

	findErr   error
	countErr  error
	createErr error
}

func newMemStore[T any](id func(*T) string, columns func(*T) map[string]interface{}) *memStore[T] {
	return &memStore[T]{id: id, columns: columns}
}

func (m *memStore[T]) matches(f database.Filter, item *T) bool {
	cols := m.columns(item)
	for _, c := range f.Conditions {
		v, ok := cols[c.Column]
		if !ok {
			return false
		}
		switch c.Operator {
		case database.OpEq:
			if fmt.Sprint(v) != fmt.Sprint(c.Value) {
				return false
			}
		case database.OpGte:
			if toFloat(v) < toFloat(c.Value) {
				return false
			}
		case database.OpLte:
			if toFloat(v) > toFloat(c.Value) {
				return false
			}
		}
	}
	if f.Search != nil {
		term := strings.ToLower(f.Search.Term)
		found := false
		for _, col := range f.Search.Columns {
			if strings.Contains(strings.ToLower(fmt.Sprint(cols[col])), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func toFloat(v interface{}) float64 {
	f, _ := strconv.ParseFloat(fmt.Sprint(v), 64)
	return f
}

func (m *memStore[T]) Find(ctx context.Context, f database.Filter, s database.Sort, limit, offset int) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}

	out := []T{}
	for i := range m.items {
		if m.matches(f, &m.items[i]) {
			out = append(out, m.items[i])
		}
	}
	if offset >= len(out) {
		return []T{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore[T]) Count(ctx context.Context, f database.Filter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countErr != nil {
		return 0, m.countErr
	}

	var n int64
	for i := range m.items {
		if m.matches(f, &m.items[i]) {
			n++
		}
	}
	return n, nil
}

func (m *memStore[T]) insert(item T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for i := range m.items {
		if m.id(&m.items[i]) == m.id(&item) {
			return database.ErrDuplicate
		}
	}
	m.items = append(m.items, item)
	return nil
}

func (m *memStore[T]) get(id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.id(&m.items[i]) == id {
			item := m.items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("failed to get record: %w", database.ErrNotFound)
}

func (m *memStore[T]) update(id string, fn func(*T)) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.id(&m.items[i]) == id {
			fn(&m.items[i])
			item := m.items[i]
			return &item, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *memStore[T]) remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.id(&m.items[i]) == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *memStore[T]) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Packages

type fakePackages struct{ *memStore[models.Package] }

func newFakePackages(pkgs ...models.Package) *fakePackages {
	f := &fakePackages{newMemStore(
		func(p *models.Package) string { return p.ID },
		func(p *models.Package) map[string]interface{} {
			category := ""
			if p.Category != nil {
				category = *p.Category
			}
			return map[string]interface{}{
				"active": p.Active, "featured": p.Featured, "destination": p.Destination,
				"category": category, "price": p.Price, "duration": p.Duration,
				"name": p.Name, "description": p.Description,
			}
		},
	)}
	f.items = append(f.items, pkgs...)
	return f
}

func (f *fakePackages) Create(ctx context.Context, p *models.Package) error { return f.insert(*p) }
func (f *fakePackages) GetByID(ctx context.Context, id string) (*models.Package, error) {
	return f.get(id)
}
func (f *fakePackages) Update(ctx context.Context, p *models.Package) error {
	_, err := f.update(p.ID, func(stored *models.Package) { *stored = *p })
	return err
}
func (f *fakePackages) Delete(ctx context.Context, id string) error { return f.remove(id) }

// Bookings

type fakeBookings struct {
	*memStore[models.Booking]
	sumErr error
}

func newFakeBookings() *fakeBookings {
	return &fakeBookings{memStore: newMemStore(
		func(b *models.Booking) string { return b.ID },
		func(b *models.Booking) map[string]interface{} {
			return map[string]interface{}{"status": string(b.Status), "package_id": b.PackageID}
		},
	)}
}

func (f *fakeBookings) Create(ctx context.Context, b *models.Booking) error { return f.insert(*b) }
func (f *fakeBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return f.get(id)
}
func (f *fakeBookings) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	return f.update(id, func(b *models.Booking) { b.Status = status })
}
func (f *fakeBookings) SumTotalPrice(ctx context.Context, flt database.Filter) (float64, error) {
	if f.sumErr != nil {
		return 0, f.sumErr
	}
	items, _ := f.Find(ctx, flt, nil, 0, 0)
	var sum float64
	for _, b := range items {
		sum += b.TotalPrice
	}
	return sum, nil
}

// Inquiries

type fakeInquiries struct{ *memStore[models.Inquiry] }

func newFakeInquiries() *fakeInquiries {
	return &fakeInquiries{newMemStore(
		func(i *models.Inquiry) string { return i.ID },
		func(i *models.Inquiry) map[string]interface{} {
			pkg := ""
			if i.PackageID != nil {
				pkg = *i.PackageID
			}
			return map[string]interface{}{"status": string(i.Status), "package_id": pkg}
		},
	)}
}

func (f *fakeInquiries) Create(ctx context.Context, i *models.Inquiry) error { return f.insert(*i) }
func (f *fakeInquiries) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	return f.get(id)
}
func (f *fakeInquiries) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) (*models.Inquiry, error) {
	return f.update(id, func(i *models.Inquiry) { i.Status = status })
}

// Reviews

type fakeReviews struct{ *memStore[models.Review] }

func newFakeReviews() *fakeReviews {
	return &fakeReviews{newMemStore(
		func(r *models.Review) string { return r.ID },
		func(r *models.Review) map[string]interface{} {
			dest := ""
			if r.Destination != nil {
				dest = *r.Destination
			}
			return map[string]interface{}{"status": string(r.Status), "destination": dest}
		},
	)}
}

func (f *fakeReviews) Create(ctx context.Context, r *models.Review) error { return f.insert(*r) }
func (f *fakeReviews) UpdateStatus(ctx context.Context, id string, status models.ReviewStatus) (*models.Review, error) {
	return f.update(id, func(r *models.Review) { r.Status = status })
}
func (f *fakeReviews) Delete(ctx context.Context, id string) error { return f.remove(id) }

// Users

type fakeUsers struct{ *memStore[models.User] }

func newFakeUsers() *fakeUsers {
	return &fakeUsers{newMemStore(
		func(u *models.User) string { return u.ID },
		func(u *models.User) map[string]interface{} {
			return map[string]interface{}{"username": u.Username, "email": u.Email}
		},
	)}
}

func (f *fakeUsers) Create(ctx context.Context, u *models.User) error {
	flt := database.Filter{}
	flt.Eq("username", u.Username)
	if n, _ := f.Count(ctx, flt); n > 0 {
		return database.ErrDuplicate
	}
	return f.insert(*u)
}
func (f *fakeUsers) GetByID(ctx context.Context, id string) (*models.User, error) { return f.get(id) }
func (f *fakeUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	flt := database.Filter{}
	flt.Eq("username", username)
	users, _ := f.Find(ctx, flt, nil, 1, 0)
	if len(users) == 0 {
		return nil, database.ErrNotFound
	}
	return &users[0], nil
}
func (f *fakeUsers) Update(ctx context.Context, u *models.User) error {
	_, err := f.update(u.ID, func(stored *models.User) { *stored = *u })
	return err
}

// Newsletter

type fakeSubscriptions struct{ *memStore[models.NewsletterSubscription] }

func newFakeSubscriptions() *fakeSubscriptions {
	return &fakeSubscriptions{newMemStore(
		func(s *models.NewsletterSubscription) string { return s.Email },
		func(s *models.NewsletterSubscription) map[string]interface{} {
			return map[string]interface{}{"email": s.Email}
		},
	)}
}

func (f *fakeSubscriptions) Create(ctx context.Context, s *models.NewsletterSubscription) error {
	return f.insert(*s)
}

// Gallery

type fakeGallery struct{ *memStore[models.GalleryItem] }

func newFakeGallery() *fakeGallery {
	return &fakeGallery{newMemStore(
		func(g *models.GalleryItem) string { return g.ID },
		func(g *models.GalleryItem) map[string]interface{} {
			cat := ""
			if g.Category != nil {
				cat = *g.Category
			}
			return map[string]interface{}{"category": cat}
		},
	)}
}

func (f *fakeGallery) Create(ctx context.Context, g *models.GalleryItem) error { return f.insert(*g) }
func (f *fakeGallery) Delete(ctx context.Context, id string) error { return f.remove(id) }

// Notifications

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
	sent   []Notification
}

func (n *recordingNotifier) Dispatch(event string, notifications ...Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	n.sent = append(n.sent, notifications...)
}

type recordingMailer struct {
	mu      sync.Mutex
	sent    []mailer.Message
	failFor map[string]error
	panicTo string
}

func (m *recordingMailer) Name() string { return "recording" }

func (m *recordingMailer) Send(ctx context.Context, msg mailer.Message) error {
	if msg.To == m.panicTo && m.panicTo != "" {
		panic("transport exploded")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	if err, ok := m.failFor[msg.To]; ok {
		return err
	}
	return nil
}

func (m *recordingMailer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	for i, msg := range m.sent {
		out[i] = msg.To
	}
	return out
}

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, &buf
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string { return &v }
