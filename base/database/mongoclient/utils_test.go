package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/prompthub/marketplace/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableListing struct {
		Price       *uint64 `bson:"price,omitempty"`
		Description *string `bson:"description,omitempty"`
		Seller      string  `bson:"seller"`
		Note        string  `bson:"note"`
	}

	patchable := &PatchableListing{}
	patchable.Price = ptr.Uint64(0)
	patchable.Description = ptr.String("")
	patchable.Note = "hey!yo!"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"price":       uint64(0),
			"description": "",
			// field seller is empty, so ignore
			"note": "hey!yo!",
		},
		updater,
	)
}
