package offerstore

import (
	"encoding/json"
	"strings"

	"github.com/uptrace/bun"

	"github.com/chainsafe/swap-offers/pkg/offer"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters so the value matches literally.
func escapeLike(v string) string {
	return likeEscaper.Replace(v)
}

// applyFilter narrows q to offers matching every set field of f.
func applyFilter(q *bun.SelectQuery, f offer.Filter) *bun.SelectQuery {
	if f.Status != nil {
		q = q.Where("o.status = ?", int16(*f.Status))
	}
	if f.ChainID != "" {
		q = q.Where(
			"EXISTS (SELECT 1 FROM chains AS fc WHERE fc.id IN (o.chain_a_id, o.chain_b_id) AND fc.chain_id = ?)",
			f.ChainID,
		)
	}
	if f.NFTID != "" {
		q = q.Where(
			`EXISTS (SELECT 1 FROM jsonb_array_elements(o.nft_in || o.nft_out) AS leg WHERE leg->>'nft_id' LIKE ? ESCAPE '\')`,
			"%"+escapeLike(f.NFTID)+"%",
		)
	}
	if f.NFTCollectionID != "" {
		probe := collectionProbe(f.NFTCollectionID)
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("o.nft_in @> ?::jsonb", probe).
				WhereOr("o.nft_out @> ?::jsonb", probe)
		})
	}
	return q
}

// collectionProbe builds the jsonb containment operand matching any leg of
// the given collection.
func collectionProbe(collectionID string) string {
	b, _ := json.Marshal([]map[string]string{{"collection_id": collectionID}})
	return string(b)
}

// applyParticipant narrows q to offers where userID plays role. An empty role
// matches either side.
func applyParticipant(q *bun.SelectQuery, userID any, role offer.Role) *bun.SelectQuery {
	switch role {
	case offer.RoleTrader:
		return q.Where("o.trader_id = ?", userID)
	case offer.RoleFulfiller:
		return q.Where("o.fulfiller_id = ?", userID)
	default:
		return q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("o.trader_id = ?", userID).WhereOr("o.fulfiller_id = ?", userID)
		})
	}
}

// applyGuard adds the compare half of a conditional write.
func applyGuard(q *bun.UpdateQuery, g offer.Guard) *bun.UpdateQuery {
	q = q.Where("o.status <= ?", int16(g.MaxStatus))
	if g.TraderID != nil {
		q = q.Where("o.trader_id = ?", *g.TraderID)
	}
	if g.FulfillerID != nil {
		q = q.Where("o.fulfiller_id = ?", *g.FulfillerID)
	}
	if g.NoFulfiller {
		q = q.Where("o.fulfiller_id IS NULL")
	}
	if g.OnChainID != nil {
		onChainID := *g.OnChainID
		q = q.WhereGroup(" AND ", func(q *bun.UpdateQuery) *bun.UpdateQuery {
			return q.Where("o.on_chain_id IS NULL").WhereOr("o.on_chain_id = ?", onChainID)
		})
	}
	return q
}
