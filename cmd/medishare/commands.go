package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"medishare-client/internal/api"
	"medishare-client/internal/cart"
	"medishare-client/internal/checkout"
	"medishare-client/internal/chat"
	"medishare-client/internal/equipment"
	"medishare-client/internal/favorites"
	"medishare-client/internal/pricing"
	"medishare-client/internal/requests"
	"medishare-client/internal/session"
	"medishare-client/internal/user"
)

type app struct {
	session   *session.Store
	cart      *cart.Service
	equipment *equipment.Service
	favorites *favorites.Service
	chat      *chat.Service
	users     *user.Service
	requests  *requests.Manager
	checkout  *checkout.Flow
	messenger *checkout.Messenger
}

var errUsage = errors.New("usage: medishare <browse|cart|checkout|message|requests|favorites|chat|whoami|logout> ...")

func (a *app) run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	ctx := context.Background()
	switch args[0] {
	case "browse":
		return a.runBrowse(ctx, args[1:])
	case "cart":
		return a.runCart(ctx, args[1:])
	case "checkout":
		return a.runCheckout(ctx, args[1:])
	case "message":
		return a.runMessage(ctx, args[1:])
	case "requests":
		return a.runRequests(ctx, args[1:])
	case "favorites":
		return a.runFavorites(ctx, args[1:])
	case "chat":
		return a.runChat(ctx, args[1:])
	case "whoami":
		return a.runWhoami()
	case "logout":
		return a.session.Clear()
	}
	return errUsage
}

func (a *app) runBrowse(ctx context.Context, args []string) error {
	if len(args) > 0 {
		eq, err := a.equipment.Get(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n%s\n%.2f MAD / %s  (%s, %s)\n",
			eq.ID, eq.Name, eq.Description, eq.Price, eq.RentalPeriod, eq.Condition, eq.Location)
		return nil
	}

	items, err := a.equipment.List(ctx)
	if err != nil {
		return err
	}
	for _, eq := range items {
		fmt.Printf("%s  %-30s  %.2f MAD / %s\n", eq.ID, eq.Name, eq.Price, eq.RentalPeriod)
	}
	return nil
}

func (a *app) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		items, err := a.cart.Items()
		if err != nil {
			return err
		}
		for _, item := range items {
			fmt.Printf("%s  %-30s  x%d  %.2f MAD\n", item.EquipmentID, item.Name, item.Quantity, item.UnitPrice)
		}
		fmt.Printf("%d item(s)\n", len(items))
		return nil
	case "add":
		if len(args) < 2 {
			return errors.New("usage: medishare cart add <equipment-id>")
		}
		eq, err := a.equipment.Get(ctx, args[1])
		if err != nil {
			return err
		}
		if err := a.cart.AddEquipment(*eq); err != nil {
			if errors.Is(err, cart.ErrAlreadyInCart) {
				fmt.Println("This equipment is already in your cart")
				return nil
			}
			return err
		}
		fmt.Println("Equipment added to cart")
		return nil
	case "remove":
		if len(args) < 2 {
			return errors.New("usage: medishare cart remove <equipment-id>")
		}
		return a.cart.Remove(args[1])
	case "quantity":
		if len(args) < 3 {
			return errors.New("usage: medishare cart quantity <equipment-id> <n>")
		}
		var qty int
		if _, err := fmt.Sscanf(args[2], "%d", &qty); err != nil {
			return fmt.Errorf("invalid quantity %q", args[2])
		}
		return a.cart.UpdateQuantity(args[1], qty)
	case "clear":
		return a.cart.Store().Clear()
	}
	return errors.New("usage: medishare cart <list|add|remove|quantity|clear>")
}

func (a *app) runCheckout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	var (
		firstName = fs.String("first-name", "", "first name")
		lastName  = fs.String("last-name", "", "last name")
		email     = fs.String("email", "", "email address")
		cin       = fs.String("cin", "", "national id number")
		address   = fs.String("address", "", "street address")
		city      = fs.String("city", "", "city")
		phone     = fs.String("phone", "", "phone number (10 digits)")
		cinFile   = fs.String("cin-file", "", "path to the identity document")
		payment   = fs.String("payment", "", "payment method: bank|wafacash|cashplus")
		start     = fs.String("start", "", "rental start date (YYYY-MM-DD)")
		end       = fs.String("end", "", "rental end date (YYYY-MM-DD)")
		message   = fs.String("message", "", "optional message to the owner")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := a.cart.Items()
	if err != nil {
		return err
	}

	form := &checkout.Form{
		Items:  items,
		Ranges: map[string]pricing.DateRange{},
		PersonalInfo: checkout.PersonalInfo{
			FirstName: *firstName,
			LastName:  *lastName,
			Email:     *email,
			CIN:       *cin,
			Address:   *address,
			City:      *city,
			Phone:     *phone,
		},
		PaymentMethod: checkout.PaymentMethod(*payment),
		Message:       *message,
	}

	if *start != "" && *end != "" {
		startDate, err := time.Parse("2006-01-02", *start)
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
		endDate, err := time.Parse("2006-01-02", *end)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
		r, err := pricing.NewDateRange(startDate, endDate)
		if err != nil {
			return err
		}
		for _, item := range items {
			form.Ranges[item.EquipmentID] = r
		}
	}

	if *cinFile != "" {
		content, err := os.ReadFile(*cinFile)
		if err != nil {
			return fmt.Errorf("read cin file: %w", err)
		}
		form.CINFile = &checkout.Attachment{
			Filename: filepath.Base(*cinFile),
			Content:  content,
		}
	}

	result, err := a.checkout.Submit(ctx, form)
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			for field, msg := range verr.Fields {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
		}
		return err
	}

	fmt.Println("Order created successfully. The owner will contact you soon.")
	if c := result.OwnerContact; c != nil {
		fmt.Printf("Owner contact: %s  %s  %s\n", c.DisplayName(), c.Email, c.Phone)
	}
	return nil
}

// runMessage contacts the owner of the first cart item before checking
// out, optionally attaching a file.
func (a *app) runMessage(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("message", flag.ContinueOnError)
	var (
		text = fs.String("text", "", "message to the owner")
		file = fs.String("file", "", "path to an attachment")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := a.cart.Items()
	if err != nil {
		return err
	}

	form := &checkout.Form{Items: items, Message: *text}
	if *file != "" {
		content, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("read attachment: %w", err)
		}
		form.MessageFile = &checkout.Attachment{
			Filename: filepath.Base(*file),
			Content:  content,
		}
	}

	if err := a.messenger.Send(ctx, form); err != nil {
		if errors.Is(err, checkout.ErrEmptyMessage) {
			return errors.New("usage: medishare message -text <text> [-file <path>]")
		}
		return err
	}
	fmt.Println("Message sent to the owner")
	return nil
}

func (a *app) runRequests(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("requests", flag.ContinueOnError)
	var (
		status = fs.String("status", "all", "filter: all|pending|approved|rejected")
		search = fs.String("search", "", "search text")
		sortBy = fs.String("sort", "date", "sort key: date|name|price")
		order  = fs.String("order", "desc", "sort order: asc|desc")
	)

	action := "list"
	rest := args
	if len(args) > 0 && (args[0] == "list" || args[0] == "approve" || args[0] == "reject") {
		action = args[0]
		rest = args[1:]
	}
	if err := fs.Parse(rest); err != nil {
		return err
	}

	if err := a.requests.Refresh(ctx); err != nil {
		return err
	}

	switch action {
	case "approve", "reject":
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: medishare requests %s <request-id>", action)
		}
		id := fs.Arg(0)
		var err error
		if action == "approve" {
			err = a.requests.Approve(ctx, id)
		} else {
			err = a.requests.Reject(ctx, id)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Request %s %sd\n", id, action)
		return nil
	}

	view := a.requests.View(
		requests.Filter{Status: requests.Status(*status), Search: *search},
		requests.SortKey(*sortBy),
		requests.SortOrder(*order),
	)
	stats := a.requests.Stats()
	fmt.Printf("total=%d pending=%d approved=%d rejected=%d\n",
		stats.Total, stats.Pending, stats.Approved, stats.Rejected)
	for _, r := range view {
		fmt.Printf("%s  %-10s  %-25s  %-20s  %.2f MAD  %s -> %s\n",
			r.ID, r.Status, r.EquipmentName, r.RequesterName, r.TotalPrice,
			r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"))
	}
	return nil
}

func (a *app) runFavorites(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		ids, err := a.favorites.List(ctx)
		if err != nil {
			return err
		}
		for id := range ids {
			fmt.Println(id)
		}
		return nil
	case "add":
		if len(args) < 2 {
			return errors.New("usage: medishare favorites add <equipment-id>")
		}
		return a.favorites.Add(ctx, args[1])
	case "remove":
		if len(args) < 2 {
			return errors.New("usage: medishare favorites remove <equipment-id>")
		}
		return a.favorites.Remove(ctx, args[1])
	}
	return errors.New("usage: medishare favorites <list|add|remove>")
}

func (a *app) runChat(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: medishare chat <history|send|watch> <user-id> [text]")
	}
	userID := args[1]

	switch args[0] {
	case "history":
		return a.printChat(ctx, userID)
	case "send":
		if len(args) < 3 {
			return errors.New("usage: medishare chat send <user-id> <text>")
		}
		return a.chat.Send(ctx, userID, args[2])
	case "watch":
		refresh := func() {
			if err := a.printChat(ctx, userID); err != nil {
				fmt.Fprintln(os.Stderr, api.UserMessage(err))
			}
		}
		poller, err := chat.NewPoller(refresh)
		if err != nil {
			return err
		}
		refresh()
		poller.Start()
		defer poller.Stop()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		<-stop
		return nil
	}
	return errors.New("usage: medishare chat <history|send|watch>")
}

func (a *app) printChat(ctx context.Context, userID string) error {
	messages, err := a.chat.History(ctx, userID)
	if err != nil {
		return err
	}
	for _, m := range messages {
		fmt.Printf("[%s] %s: %s\n", m.CreatedAt.Format("15:04:05"), m.SenderID, m.Content)
	}
	return nil
}

func (a *app) runWhoami() error {
	s := a.session.Resolve()
	if !s.LoggedIn() {
		fmt.Println("guest")
		return nil
	}
	if s.Profile != nil {
		fmt.Printf("%s %s <%s> (%s)\n", s.Profile.FirstName, s.Profile.LastName, s.Profile.Email, s.Role)
		return nil
	}
	fmt.Println(s.Role)
	return nil
}
