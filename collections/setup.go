package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically ensures the quotations collection exists. Items are
// stored as a JSON field on the quotation record itself: a quotation is
// always read and written whole, so there is nothing to gain from a child
// collection.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quotation_no", Required: true})
		c.Fields.Add(&core.TextField{Name: "folder_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "print_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "phone_number", Required: false})
		c.Fields.Add(&core.JSONField{Name: "items"})
		c.Fields.Add(&core.NumberField{Name: "total"})
		c.Fields.Add(&core.BoolField{Name: "advance_enabled"})
		c.Fields.Add(&core.TextField{Name: "advance_amount"})
		c.Fields.Add(&core.BoolField{Name: "credit_enabled"})
		c.Fields.Add(&core.TextField{Name: "credit_amount"})
		c.Fields.Add(&core.TextField{Name: "date"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback populates its fields, and the collection
// is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
