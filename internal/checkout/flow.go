package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"medishare-client/internal/api"
	"medishare-client/internal/cart"
	"medishare-client/internal/logger"
	"medishare-client/internal/pricing"
	"medishare-client/internal/user"
)

type State int

const (
	StateEditing State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// homeRedirectDelay is how long the confirmation view stays up before
// the caller navigates back home.
const homeRedirectDelay = 5 * time.Second

const defaultRangeDays = 30

// Result is returned on a successful submission. OwnerContact is
// best-effort and may be nil even though the order was created.
type Result struct {
	Orders        []string
	OwnerContact  *user.Contact
	RedirectDelay time.Duration
}

// Flow orchestrates validation, order assembly and the one-shot
// multipart submission of an order.
type Flow struct {
	api   *api.Client
	cart  cart.Store
	users *user.Service
	now   func() time.Time

	mu    sync.Mutex
	state State
}

func NewFlow(client *api.Client, cartStore cart.Store, users *user.Service) *Flow {
	return &Flow{
		api:   client,
		cart:  cartStore,
		users: users,
		now:   time.Now,
		state: StateEditing,
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// Submit validates the form and, if clean, posts the order as a single
// multipart request. On success the cart is cleared and the owner's
// contact details fetched best-effort. On any failure the cart is left
// untouched and the flow stays resubmittable.
func (f *Flow) Submit(ctx context.Context, form *Form) (*Result, error) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	f.state = StateValidating
	f.mu.Unlock()

	if len(form.Items) == 0 {
		f.setState(StateEditing)
		return nil, ErrEmptyCart
	}
	if verr := form.Validate(); verr != nil {
		f.setState(StateEditing)
		return nil, verr
	}

	f.setState(StateSubmitting)

	data := f.buildOrder(form)
	payload, err := json.Marshal(data)
	if err != nil {
		f.setState(StateFailed)
		return nil, fmt.Errorf("encode order: %w", err)
	}

	fields := map[string]string{"orderData": string(payload)}
	files := []api.FilePart{{
		Field:    "cinFile",
		Filename: form.CINFile.Filename,
		Content:  form.CINFile.Content,
	}}
	if form.MessageFile != nil {
		files = append(files, api.FilePart{
			Field:    "messageFile",
			Filename: form.MessageFile.Filename,
			Content:  form.MessageFile.Content,
		})
	}

	var created []createdOrder
	if err := f.api.PostMultipart(ctx, "/orders", fields, files, &created); err != nil {
		f.setState(StateFailed)
		return nil, fmt.Errorf("create order: %w", err)
	}

	// The order exists server-side now; everything below is cleanup and
	// convenience and must not undo the success.
	if err := f.cart.Clear(); err != nil {
		logger.FromCtx(ctx).Warn("failed to clear cart after order", zap.Error(err))
	}

	result := &Result{RedirectDelay: homeRedirectDelay}
	for _, o := range created {
		result.Orders = append(result.Orders, o.ID)
	}
	if len(created) > 0 && created[0].OwnerID != "" {
		contact, err := f.users.Get(ctx, created[0].OwnerID)
		if err != nil {
			logger.FromCtx(ctx).Warn("failed to fetch owner contact", zap.Error(err))
		} else {
			result.OwnerContact = contact
		}
	}

	f.setState(StateSucceeded)
	return result, nil
}

// buildOrder derives the submitted line items and totals. Items without
// an explicit range get the default one-month window the page shows
// before the renter touches the date inputs.
func (f *Flow) buildOrder(form *Form) orderData {
	lines := make([]orderLine, 0, len(form.Items))
	for _, item := range form.Items {
		r, ok := form.Ranges[item.EquipmentID]
		if !ok {
			start := f.now()
			r = pricing.DateRange{Start: start, End: start.AddDate(0, 0, defaultRangeDays)}
		}

		lineTotal := pricing.ItemTotal(item, r)
		lines = append(lines, orderLine{
			EquipmentID:  item.EquipmentID,
			Quantity:     item.Quantity,
			StartDate:    r.Start.Format("2006-01-02"),
			EndDate:      r.End.Format("2006-01-02"),
			RentalDays:   pricing.DurationMonths(r),
			RentalPeriod: "month",
			Price:        lineTotal.InexactFloat64(),
		})
	}

	total := pricing.CartTotal(form.Items, form.Ranges)
	deposit := pricing.CartDeposit(total)

	message := form.Message
	if message == "" {
		message = defaultOrderMessage
	}

	return orderData{
		Items:         lines,
		PaymentMethod: form.PaymentMethod,
		TotalAmount:   total.Add(deposit).InexactFloat64(),
		Deposit:       deposit.InexactFloat64(),
		PersonalInfo:  form.PersonalInfo,
		Message:       message,
	}
}
