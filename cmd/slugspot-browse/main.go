// slugspot-browse is a terminal consumer of the slugspot API built on the
// client package: sign in, browse and filter listings, inspect details,
// leave reviews, and walk the booking checkout
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"slugspot/internal/client"
	bookdom "slugspot/internal/services/api/bookings/domain"
	paydom "slugspot/internal/services/api/payments/domain"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: slugspot-browse [flags] <command> [args]

commands:
  list [query] [sort]          browse listings (sort: newest | alphabetical | top_rated)
  show <id>                    listing detail with reviews
  review <id> <rating> [text]  leave a review (rating 1..5)
  services                     bookable service catalog and slots
  book <service> <date> <slot> reserve a slot (date YYYY-MM-DD)
  bookings                     your bookings
  pay <booking-id>             settle a pending booking with the test card

flags:
`)
	flag.PrintDefaults()
}

func main() {
	_ = godotenv.Load()

	api := flag.String("api", envOr("SLUGSPOT_URL", "http://localhost:4000"), "API base URL")
	email := flag.String("email", os.Getenv("SLUGSPOT_EMAIL"), "account email")
	password := flag.String("password", os.Getenv("SLUGSPOT_PASSWORD"), "account password")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(*api)
	if *email != "" {
		if _, err := c.SignIn(ctx, *email, *password); err != nil {
			fail("sign in: %v", err)
		}
	}
	c.Gate.Init(ctx)

	args := flag.Args()
	switch args[0] {
	case "list":
		q, sort := "", ""
		if len(args) > 1 {
			q = args[1]
		}
		if len(args) > 2 {
			sort = args[2]
		}
		runList(ctx, c, q, sort)
	case "show":
		need(args, 2, "show <id>")
		runShow(ctx, c, args[1])
	case "review":
		need(args, 3, "review <id> <rating> [text]")
		rating := 0
		if _, err := fmt.Sscanf(args[2], "%d", &rating); err != nil {
			fail("rating must be a number: %v", err)
		}
		comment := ""
		if len(args) > 3 {
			comment = args[3]
		}
		runReview(ctx, c, args[1], rating, comment)
	case "services":
		runServices(ctx, c)
	case "book":
		need(args, 4, "book <service> <date> <slot>")
		runBook(ctx, c, args[1], args[2], args[3])
	case "bookings":
		runBookings(ctx, c)
	case "pay":
		need(args, 2, "pay <booking-id>")
		runPay(ctx, c, args[1])
	default:
		usage()
		os.Exit(2)
	}
}

func runList(ctx context.Context, c *client.Client, q, sort string) {
	l := c.Listings()
	defer l.Close()
	l.Load(ctx, q, sort)

	v := l.View()
	switch v.State {
	case client.StateError:
		if client.IsAuthRequired(v.Err) {
			fail("sign in required: pass -email and -password")
		}
		fail("load listings: %v", v.Err)
	case client.StateData:
		if v.NoMatches {
			fmt.Printf("no listings match %q\n", q)
			return
		}
		for _, it := range v.Listings {
			fmt.Printf("%s  %-40s  %.1f★ (%d)  %s\n",
				it.ID, it.Title, it.AvgRating, it.ReviewCount, it.CreatedAt.Format("2006-01-02"))
		}
	}
}

func runShow(ctx context.Context, c *client.Client, id string) {
	l := c.Detail()
	defer l.Close()
	l.Load(ctx, id)

	v := l.View()
	if v.State == client.StateError {
		if v.NotFound {
			fail("listing %s does not exist", id)
		}
		fail("load detail: %v", v.Err)
	}
	d := v.Detail
	fmt.Printf("%s\n%s\nby %s <%s> on %s\n%.1f★ from %d reviews\n",
		d.Title, d.Description, d.AuthorName, d.AuthorEmail,
		d.CreatedAt.Format("2006-01-02"), d.AvgRating, d.ReviewCount)
	for _, r := range d.Reviews {
		fmt.Printf("  %d★ %s: %s\n", r.Rating, r.AuthorName, r.Comment)
	}
}

func runReview(ctx context.Context, c *client.Client, id string, rating int, comment string) {
	l := c.Detail()
	defer l.Close()
	l.Load(ctx, id)
	if v := l.View(); v.State == client.StateError {
		fail("load detail: %v", v.Err)
	}
	if err := l.SubmitReview(ctx, rating, comment); err != nil {
		fail("submit review: %v", err)
	}
	d := l.View().Detail
	fmt.Printf("review saved; %s is now %.1f★ from %d reviews\n", d.Title, d.AvgRating, d.ReviewCount)
}

func runServices(ctx context.Context, c *client.Client) {
	cat, err := c.API.BookingCatalog(ctx)
	if err != nil {
		fail("catalog: %v", err)
	}
	slots, err := c.API.BookingSlots(ctx)
	if err != nil {
		fail("slots: %v", err)
	}
	for _, s := range cat {
		fmt.Printf("%-14s %-26s $%d.%02d / %d min\n", s.ID, s.Name, s.PriceCents/100, s.PriceCents%100, s.DurationMin)
	}
	fmt.Printf("slots: %v\n", slots)
}

func runBook(ctx context.Context, c *client.Client, service, date, slot string) {
	bk, err := c.API.CreateBooking(ctx, bookdom.CreateInput{ServiceID: service, Date: date, Slot: slot})
	if err != nil {
		fail("book: %v", err)
	}
	fmt.Printf("booked %s on %s at %s for $%d.%02d (%s, id %s)\n",
		bk.ServiceName, bk.Date, bk.Slot, bk.PriceCents/100, bk.PriceCents%100, bk.Status, bk.ID)
}

func runBookings(ctx context.Context, c *client.Client) {
	out, err := c.API.MyBookings(ctx)
	if err != nil {
		fail("bookings: %v", err)
	}
	for _, bk := range out {
		fmt.Printf("%s  %-26s %s %s  $%d.%02d  %s\n",
			bk.ID, bk.ServiceName, bk.Date, bk.Slot, bk.PriceCents/100, bk.PriceCents%100, bk.Status)
	}
}

func runPay(ctx context.Context, c *client.Client, bookingID string) {
	rec, err := c.API.Charge(ctx, paydom.ChargeInput{
		BookingID: bookingID,
		Card:      paydom.Card{Number: "4242424242424242", ExpMonth: 12, ExpYear: 2030, CVC: "123"},
	})
	if err != nil {
		fail("charge: %v", err)
	}
	fmt.Printf("paid $%d.%02d, ref %s\n", rec.AmountCents/100, rec.AmountCents%100, rec.PaymentRef)
}

func need(args []string, n int, usage string) {
	if len(args) < n {
		fail("usage: slugspot-browse %s", usage)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
