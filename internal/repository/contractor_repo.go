package repository

import (
	"context"
	"database/sql"
)

type ContractorRow struct {
	Acronym    string
	Name       sql.NullString
	City       sql.NullString
	Address    sql.NullString
	Phone      sql.NullString
	Email      sql.NullString
	PostalCode sql.NullString
	USCID      sql.NullString
}

type ContractRow struct {
	Subject    sql.NullString
	ExpiryDate sql.NullTime
	Remarks    sql.NullString
	ServicedBy sql.NullString
}

// GetContractor returns one contractor by acronym. sql.ErrNoRows when
// the acronym is unknown.
func (r *PostgresRepo) GetContractor(ctx context.Context, acronym string) (*ContractorRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	row := r.DB.QueryRowContext(ctx, `
        SELECT akronim, nazwa, miasto, adres, telefon, email, kodpocz, idusc
        FROM bokser_kontrahenci
        WHERE akronim = $1
    `, acronym)

	var c ContractorRow
	if err := row.Scan(
		&c.Acronym, &c.Name, &c.City, &c.Address,
		&c.Phone, &c.Email, &c.PostalCode, &c.USCID,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListContracts returns the contractor's contracts, latest expiry
// first. A contractor without contracts gets an empty slice.
func (r *PostgresRepo) ListContracts(ctx context.Context, acronym string) ([]ContractRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
        SELECT przedmiot_umowy, koniec_umowy, uwagi, kto_serwisuje
        FROM bokser_umowy
        WHERE akronim = $1
        ORDER BY koniec_umowy DESC
    `, acronym)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ContractRow{}
	for rows.Next() {
		var c ContractRow
		if err := rows.Scan(&c.Subject, &c.ExpiryDate, &c.Remarks, &c.ServicedBy); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListContractorContacts returns the distinct non-blank contact names
// seen on the contractor's cases, most recently reported first.
func (r *PostgresRepo) ListContractorContacts(ctx context.Context, acronym string) ([]string, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
        SELECT kontakt
        FROM bokser_sprawy
        WHERE akronim = $1
          AND kontakt IS NOT NULL
          AND BTRIM(kontakt) <> ''
        GROUP BY kontakt
        ORDER BY MAX(data_zgl) DESC
    `, acronym)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
