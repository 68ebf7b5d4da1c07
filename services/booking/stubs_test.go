package booking

import (
	"context"
	"errors"
	"sort"
	"time"

	"fitbook/models"
	"fitbook/services/payment"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// duplicateKeyErr mimics the driver error raised by the unique (slotId,
// userId) index.
var duplicateKeyErr = mongo.WriteException{
	WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
}

type stubSlotRepo struct {
	slots map[string]*models.Slot
}

func newStubSlotRepo(slots ...models.Slot) *stubSlotRepo {
	r := &stubSlotRepo{slots: map[string]*models.Slot{}}
	for i := range slots {
		s := slots[i]
		r.slots[s.ID] = &s
	}
	return r
}

func (r *stubSlotRepo) Insert(_ context.Context, slot *models.Slot) error {
	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	cp := *slot
	r.slots[slot.ID] = &cp
	return nil
}

func (r *stubSlotRepo) InsertMany(_ context.Context, slots []models.Slot) ([]models.Slot, error) {
	for i := range slots {
		if slots[i].ID == "" {
			slots[i].ID = uuid.New().String()
		}
		cp := slots[i]
		r.slots[cp.ID] = &cp
	}
	return slots, nil
}

func (r *stubSlotRepo) GetByID(_ context.Context, slotID string) (*models.Slot, error) {
	s, ok := r.slots[slotID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *s
	return &cp, nil
}

func (r *stubSlotRepo) GetByTrainerID(_ context.Context, trainerID string) ([]models.Slot, error) {
	var out []models.Slot
	for _, s := range r.slots {
		if s.TrainerID == trainerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSlotRepo) Delete(_ context.Context, slotID string) error {
	if _, ok := r.slots[slotID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.slots, slotID)
	return nil
}

func (r *stubSlotRepo) DeleteExpired(_ context.Context, asOfDate string) (int64, error) {
	var removed int64
	for id, s := range r.slots {
		if s.Status == models.SlotStatusPending && s.StartDate < asOfDate {
			delete(r.slots, id)
			removed++
		}
	}
	return removed, nil
}

func (r *stubSlotRepo) SetBooked(_ context.Context, slotID string) error {
	s, ok := r.slots[slotID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	s.IsBooked = true
	return nil
}

func (r *stubSlotRepo) SetStatus(_ context.Context, slotID, status string) error {
	s, ok := r.slots[slotID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	s.Status = status
	return nil
}

func (r *stubSlotRepo) IncrementCompletedSessions(_ context.Context, slotID string, prev int) (bool, error) {
	s, ok := r.slots[slotID]
	if !ok || s.CompletedSessions != prev {
		return false, nil
	}
	s.CompletedSessions = prev + 1
	return true, nil
}

func (r *stubSlotRepo) EnsureIndexes() error { return nil }

type stubBookingRepo struct {
	bookings map[string]*models.Booking
}

func newStubBookingRepo(bookings ...models.Booking) *stubBookingRepo {
	r := &stubBookingRepo{bookings: map[string]*models.Booking{}}
	for i := range bookings {
		b := bookings[i]
		r.bookings[b.ID] = &b
	}
	return r
}

func (r *stubBookingRepo) Insert(_ context.Context, booking *models.Booking) error {
	for _, b := range r.bookings {
		if b.SlotID == booking.SlotID && b.UserID == booking.UserID {
			return duplicateKeyErr
		}
	}
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *stubBookingRepo) GetByID(_ context.Context, bookingID string) (*models.Booking, error) {
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *b
	return &cp, nil
}

func (r *stubBookingRepo) GetBySlotAndUser(_ context.Context, slotID, userID string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.SlotID == slotID && b.UserID == userID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *stubBookingRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingDate.After(out[j].BookingDate) })
	return out, nil
}

func (r *stubBookingRepo) ListByTrainer(_ context.Context, trainerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.TrainerID == trainerID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingDate.After(out[j].BookingDate) })
	return out, nil
}

func (r *stubBookingRepo) SetPaymentStatus(_ context.Context, bookingID, fromStatus, toStatus string) (bool, error) {
	b, ok := r.bookings[bookingID]
	if !ok || b.PaymentStatus != fromStatus {
		return false, nil
	}
	b.PaymentStatus = toStatus
	return true, nil
}

func (r *stubBookingRepo) SetPrescription(_ context.Context, bookingID, prescription string, completedAt time.Time) (*models.Booking, error) {
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	b.Prescription = prescription
	b.SessionCompletionTime = &completedAt
	cp := *b
	return &cp, nil
}

func (r *stubBookingRepo) UpdatePrescriptionText(_ context.Context, bookingID, prescription string) error {
	b, ok := r.bookings[bookingID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	b.Prescription = prescription
	return nil
}

func (r *stubBookingRepo) EnsureIndexes() error { return nil }

type stubTrainerRepo struct {
	trainers map[string]models.Trainer
	specs    map[string]models.Specialization
}

func newStubTrainerRepo() *stubTrainerRepo {
	return &stubTrainerRepo{
		trainers: map[string]models.Trainer{
			"trainer-1": {ID: "trainer-1", Name: "Alex Reed"},
		},
		specs: map[string]models.Specialization{
			"spec-1": {ID: "spec-1", Name: "Strength Training"},
		},
	}
}

func (r *stubTrainerRepo) Create(_ context.Context, _ *models.Trainer) error { return nil }

func (r *stubTrainerRepo) GetByID(_ context.Context, trainerID string) (*models.Trainer, error) {
	t, ok := r.trainers[trainerID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &t, nil
}

func (r *stubTrainerRepo) GetByEmail(_ context.Context, _ string) (*models.Trainer, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *stubTrainerRepo) SetKycStatus(_ context.Context, _, _ string, _ *models.KycDocs) error {
	return nil
}

func (r *stubTrainerRepo) GetSpecializationByID(_ context.Context, id string) (*models.Specialization, error) {
	spec, ok := r.specs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &spec, nil
}

func (r *stubTrainerRepo) ListSpecializations(_ context.Context) ([]models.Specialization, error) {
	return nil, nil
}

func (r *stubTrainerRepo) EnsureIndexes() error { return nil }

// stubGateway scripts provider behavior and records refund calls.
type stubGateway struct {
	paymentReference string
	refundOK         bool
	refundErr        error
	refunds          []int64
}

func (g *stubGateway) CreateCheckout(_ context.Context, _ payment.CheckoutRequest) (*payment.Checkout, error) {
	return &payment.Checkout{ID: "cs_test_1"}, nil
}

func (g *stubGateway) RetrieveCheckout(_ context.Context, checkoutID string) (*payment.Checkout, error) {
	return &payment.Checkout{ID: checkoutID, PaymentReference: g.paymentReference}, nil
}

func (g *stubGateway) Refund(_ context.Context, _ string, amount int64) (bool, error) {
	if g.refundErr != nil {
		return false, g.refundErr
	}
	g.refunds = append(g.refunds, amount)
	return g.refundOK, nil
}

// stubWallet records payouts and, like the real wallet, drops a second credit
// for the same booking.
type stubWallet struct {
	credits   []float64
	credited  map[string]bool
	creditErr error
}

func (w *stubWallet) Credit(_ context.Context, _ string, bookingAmount float64, bookingID string) (*models.Wallet, error) {
	if w.creditErr != nil {
		return nil, w.creditErr
	}
	if w.credited == nil {
		w.credited = map[string]bool{}
	}
	if w.credited[bookingID] {
		return &models.Wallet{}, nil
	}
	w.credited[bookingID] = true
	w.credits = append(w.credits, bookingAmount)
	return &models.Wallet{}, nil
}

func (w *stubWallet) Withdraw(_ context.Context, _ string, _ float64) (*models.Wallet, error) {
	return nil, errors.New("not implemented")
}

func (w *stubWallet) Get(_ context.Context, _ string) (*models.Wallet, error) {
	return nil, errors.New("not implemented")
}

// stubNotifier counts emitted notifications.
type stubNotifier struct {
	confirmed []string
	cancelled []string
}

func (n *stubNotifier) BookingConfirmed(_ context.Context, b *models.Booking) error {
	n.confirmed = append(n.confirmed, b.ID)
	return nil
}

func (n *stubNotifier) BookingCancelled(_ context.Context, b *models.Booking) error {
	n.cancelled = append(n.cancelled, b.ID)
	return nil
}

type fixture struct {
	svc      *DefaultBookingService
	slots    *stubSlotRepo
	bookings *stubBookingRepo
	gateway  *stubGateway
	wallet   *stubWallet
	notifier *stubNotifier
}

func newFixture(slots ...models.Slot) *fixture {
	f := &fixture{
		slots:    newStubSlotRepo(slots...),
		bookings: newStubBookingRepo(),
		gateway:  &stubGateway{paymentReference: "pi_test_1", refundOK: true},
		wallet:   &stubWallet{},
		notifier: &stubNotifier{},
	}
	f.svc = NewDefaultBookingService(
		f.slots, f.bookings, newStubTrainerRepo(), f.gateway, f.wallet, f.notifier, zap.NewNop())
	return f
}
