package taxonomy

import (
	"context"
	"database/sql"
	"fmt"
)

// PGSource reads the taxonomy from the skill_terms and skill_variations tables.
type PGSource struct {
	DB *sql.DB
}

func (s PGSource) Name() string { return "postgres" }

// Load reads every term with its variations, keeping stored positions.
func (s PGSource) Load(ctx context.Context) (*Taxonomy, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("taxonomy postgres source: database not configured")
	}
	const query = `
SELECT t.id, t.category, t.term, v.variation
FROM skill_terms t
LEFT JOIN skill_variations v ON v.term_id = t.id
ORDER BY t.position, t.id, v.position`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query taxonomy: %w", err)
	}
	defer rows.Close()

	type pending struct {
		category Category
		spec     EntrySpec
	}
	var order []int64
	byID := make(map[int64]*pending)
	for rows.Next() {
		var (
			id        int64
			rawCat    string
			term      string
			variation sql.NullString
		)
		if err := rows.Scan(&id, &rawCat, &term, &variation); err != nil {
			return nil, fmt.Errorf("scan taxonomy row: %w", err)
		}
		p, ok := byID[id]
		if !ok {
			cat, err := ParseCategory(rawCat)
			if err != nil {
				return nil, err
			}
			p = &pending{category: cat, spec: EntrySpec{Term: term}}
			byID[id] = p
			order = append(order, id)
		}
		if variation.Valid {
			p.spec.Variations = append(p.spec.Variations, variation.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate taxonomy rows: %w", err)
	}

	var doc Document
	for _, id := range order {
		p := byID[id]
		doc.setSection(p.category, append(doc.section(p.category), p.spec))
	}
	return Build(doc)
}

// SeedPG replaces the stored taxonomy with t inside one transaction.
func SeedPG(ctx context.Context, db *sql.DB, t *Taxonomy) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM skill_variations`); err != nil {
		return fmt.Errorf("clear variations: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM skill_terms`); err != nil {
		return fmt.Errorf("clear terms: %w", err)
	}

	position := 0
	for _, cat := range Order {
		for _, e := range t.tables[cat] {
			var id int64
			err := tx.QueryRowContext(ctx,
				`INSERT INTO skill_terms (category, term, position) VALUES ($1, $2, $3) RETURNING id`,
				string(cat), e.Term, position,
			).Scan(&id)
			if err != nil {
				return fmt.Errorf("insert term %s/%s: %w", cat, e.Term, err)
			}
			position++
			for i, v := range e.Variations {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO skill_variations (term_id, variation, position) VALUES ($1, $2, $3)`,
					id, v, i,
				); err != nil {
					return fmt.Errorf("insert variation %s/%s: %w", e.Term, v, err)
				}
			}
		}
	}
	return tx.Commit()
}
