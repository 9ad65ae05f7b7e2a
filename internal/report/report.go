// Package report renders plain-text business reports.
package report

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/diewo77/sales-insights/internal/analytics"
	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/models"
)

// ErrUnknownReport is returned for a report type outside Types.
var ErrUnknownReport = errors.New("unknown report type")

type Type string

const (
	TypeSummary  Type = "summary"
	TypeCustomer Type = "customer"
)

var Types = []Type{TypeSummary, TypeCustomer}

// ParseType accepts a report type in any case. Blank means summary.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TypeSummary, nil
	}
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReport, s)
}

const timeLayout = "2006-01-02 15:04:05"

// Render builds the report of type t. Amounts use English digit grouping.
func Render(ds *dataset.Dataset, t Type, now time.Time) (string, error) {
	p := message.NewPrinter(language.English)
	switch t {
	case TypeSummary:
		return summary(p, ds, now), nil
	case TypeCustomer:
		return customers(p, ds, now), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReport, t)
}

func summary(p *message.Printer, ds *dataset.Dataset, now time.Time) string {
	s := analytics.DataSummary(ds)
	status := analytics.StatusDistribution(ds)

	var b strings.Builder
	b.WriteString("# Business Summary Report\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format(timeLayout))

	b.WriteString("## Key Metrics\n")
	p.Fprintf(&b, "- Total Customers: %d\n", s.TotalCustomers)
	p.Fprintf(&b, "- Total Orders: %d\n", s.TotalOrders)
	p.Fprintf(&b, "- Total Order Items: %d\n", s.TotalOrderItems)
	p.Fprintf(&b, "- Total Products: %d\n", s.TotalProducts)
	p.Fprintf(&b, "- Total Revenue: $%.2f\n", s.TotalRevenue)
	p.Fprintf(&b, "- Average Order Value: $%.2f\n\n", s.AvgOrderValue)

	b.WriteString("## Top Performers\n")
	fmt.Fprintf(&b, "- Top Customer by Orders: %s\n", orNone(s.TopCustomerByOrders.First()))
	fmt.Fprintf(&b, "- Top Product by Sales: %s\n\n", orNone(s.TopProductBySales.First()))

	b.WriteString("## Customer Analysis\n")
	p.Fprintf(&b, "Premium Customers: %d\n", analytics.CountCustomersOfType(ds, analytics.TypePremium))
	p.Fprintf(&b, "Standard Customers: %d\n\n", analytics.CountCustomersOfType(ds, analytics.TypeStandard))

	b.WriteString("## Order Status Distribution\n")
	for _, st := range models.Statuses {
		p.Fprintf(&b, "%-11s %d\n", st, status.Of(st))
	}
	return b.String()
}

func customers(p *message.Printer, ds *dataset.Dataset, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Customer Analysis Report\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format(timeLayout))
	b.WriteString("## Customer Spending Summary\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Customer\tTotal Spent\tTotal Orders\tCustomer Type")
	for _, c := range analytics.CustomerSpending(ds) {
		p.Fprintf(tw, "%s\t%.2f\t%d\t%s\n", c.Name, c.TotalSpent, c.Items, orNone(c.Type))
	}
	_ = tw.Flush()
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
