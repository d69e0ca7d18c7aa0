// Package store owns persistence for quotation records. It wraps the
// embedded PocketBase collection behind a small repository so that handlers
// and document generation never touch raw records directly.
package store

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

const collectionName = "quotations"

// LineItem is a single priced row of a quotation. Sr is 1-based and
// contiguous; Amount is always Qty*Rate outside of an active edit.
type LineItem struct {
	Sr          int     `json:"sr"`
	ProductName string  `json:"productName"`
	Qty         float64 `json:"qnty"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Quotation is a saved price quotation. AdvanceAmount and CreditAmount are
// kept as digit strings: the form collects them as free text and an empty
// value carries meaning (defaults to the total at reconcile time).
type Quotation struct {
	ID             string     `json:"id"`
	QuotationNo    string     `json:"quotationNo"`
	FolderName     string     `json:"folderName"`
	PrintNumber    string     `json:"printNumber"`
	ClientName     string     `json:"clientName"`
	PhoneNumber    string     `json:"phoneNumber"`
	Items          []LineItem `json:"items"`
	Total          float64    `json:"total"`
	AdvanceEnabled bool       `json:"advanceChecked"`
	AdvanceAmount  string     `json:"advanceAmount"`
	CreditEnabled  bool       `json:"creditChecked"`
	CreditAmount   string     `json:"creditAmount"`
	Date           string     `json:"date"`
	Created        time.Time  `json:"createdAt"`
}

// Quotations is the repository over the quotations collection.
type Quotations struct {
	app core.App
}

func NewQuotations(app core.App) *Quotations {
	return &Quotations{app: app}
}

// List returns every saved quotation in creation order (oldest first).
func (r *Quotations) List() ([]Quotation, error) {
	col, err := r.app.FindCollectionByNameOrId(collectionName)
	if err != nil {
		return nil, fmt.Errorf("quotations collection not found: %w", err)
	}

	records, err := r.app.FindAllRecords(col)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}

	quotations := make([]Quotation, 0, len(records))
	for _, rec := range records {
		quotations = append(quotations, decodeRecord(rec))
	}
	sort.SliceStable(quotations, func(i, j int) bool {
		return quotations[i].Created.Before(quotations[j].Created)
	})
	return quotations, nil
}

// FindByID returns the quotation with the given record id.
func (r *Quotations) FindByID(id string) (Quotation, error) {
	rec, err := r.app.FindRecordById(collectionName, id)
	if err != nil {
		return Quotation{}, fmt.Errorf("quotation %s not found: %w", id, err)
	}
	return decodeRecord(rec), nil
}

// Create saves a new quotation and fills in the creation-time fields: the
// record id, a generated quotation number when none was supplied, and the
// display date. These are set exactly once and never touched by Update.
func (r *Quotations) Create(q Quotation) (Quotation, error) {
	col, err := r.app.FindCollectionByNameOrId(collectionName)
	if err != nil {
		return Quotation{}, fmt.Errorf("quotations collection not found: %w", err)
	}

	now := time.Now()
	if strings.TrimSpace(q.QuotationNo) == "" {
		q.QuotationNo = fmt.Sprintf("Q%06d", now.UnixMilli()%1_000_000)
	}
	if q.Date == "" {
		q.Date = now.Format("02/01/2006")
	}

	rec := core.NewRecord(col)
	applyQuotation(rec, q)

	if err := r.app.Save(rec); err != nil {
		return Quotation{}, fmt.Errorf("save quotation: %w", err)
	}

	q.ID = rec.Id
	q.Created = rec.GetDateTime("created").Time()
	return q, nil
}

// Update replaces every mutable field of an existing quotation. The record
// id, creation timestamp and display date are preserved.
func (r *Quotations) Update(id string, q Quotation) error {
	rec, err := r.app.FindRecordById(collectionName, id)
	if err != nil {
		return fmt.Errorf("quotation %s not found: %w", id, err)
	}

	q.Date = rec.GetString("date")
	applyQuotation(rec, q)

	if err := r.app.Save(rec); err != nil {
		return fmt.Errorf("update quotation %s: %w", id, err)
	}
	return nil
}

// Delete removes a quotation permanently.
func (r *Quotations) Delete(id string) error {
	rec, err := r.app.FindRecordById(collectionName, id)
	if err != nil {
		return fmt.Errorf("quotation %s not found: %w", id, err)
	}
	if err := r.app.Delete(rec); err != nil {
		return fmt.Errorf("delete quotation %s: %w", id, err)
	}
	return nil
}

func applyQuotation(rec *core.Record, q Quotation) {
	rec.Set("quotation_no", q.QuotationNo)
	rec.Set("folder_name", q.FolderName)
	rec.Set("print_number", q.PrintNumber)
	rec.Set("client_name", q.ClientName)
	rec.Set("phone_number", q.PhoneNumber)
	rec.Set("items", q.Items)
	rec.Set("total", q.Total)
	rec.Set("advance_enabled", q.AdvanceEnabled)
	rec.Set("advance_amount", q.AdvanceAmount)
	rec.Set("credit_enabled", q.CreditEnabled)
	rec.Set("credit_amount", q.CreditAmount)
	rec.Set("date", q.Date)
}

// decodeRecord maps a raw record back into a Quotation. A malformed items
// payload is logged and degrades to an empty item list; it never fails the
// whole read.
func decodeRecord(rec *core.Record) Quotation {
	var items []LineItem
	if err := rec.UnmarshalJSONField("items", &items); err != nil {
		log.Printf("store: malformed items on quotation %s: %v", rec.Id, err)
		items = nil
	}

	return Quotation{
		ID:             rec.Id,
		QuotationNo:    rec.GetString("quotation_no"),
		FolderName:     rec.GetString("folder_name"),
		PrintNumber:    rec.GetString("print_number"),
		ClientName:     rec.GetString("client_name"),
		PhoneNumber:    rec.GetString("phone_number"),
		Items:          items,
		Total:          rec.GetFloat("total"),
		AdvanceEnabled: rec.GetBool("advance_enabled"),
		AdvanceAmount:  rec.GetString("advance_amount"),
		CreditEnabled:  rec.GetBool("credit_enabled"),
		CreditAmount:   rec.GetString("credit_amount"),
		Date:           rec.GetString("date"),
		Created:        rec.GetDateTime("created").Time(),
	}
}
