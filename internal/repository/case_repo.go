package repository

import (
	"context"
	"database/sql"

	"github.com/technikait/bokser-dashboard-backend/internal/query"
)

// CaseRow is one unshaped listing row. Nullable columns stay sql.Null*
// until the handler shapes them for the wire.
type CaseRow struct {
	CaseNumber     string
	Subjects       sql.NullString
	ContractorName sql.NullString
	Acronym        sql.NullString
	Contact        sql.NullString
	PlannedDate    sql.NullTime
	PlannedTime    sql.NullString
	ClosedDate     sql.NullTime
	Status         sql.NullInt64
}

type TaskRow struct {
	Activity      sql.NullString
	Subject       sql.NullString
	Version       sql.NullString
	Servicer      sql.NullString
	CompletedDate sql.NullTime
	Status        sql.NullInt64
	Remarks       sql.NullString
}

type CaseDetailsRow struct {
	Acronym      sql.NullString
	ClosedDate   sql.NullTime
	Owner        sql.NullString
	RegisteredBy sql.NullString
	Contact      sql.NullString
	Description  sql.NullString
	AllRemarks   sql.NullString
	AllSubjects  sql.NullString
}

type HistoryRow struct {
	Date        sql.NullTime
	Actor       sql.NullString
	Description sql.NullString
}

const caseListBase = `
        FROM bokser_sprawy AS s
        LEFT JOIN bokser_kontrahenci AS k ON s.akronim = k.akronim
        LEFT JOIN bokser_zadania AS z ON s.nr_sprawy = z.nr_spr
`

// ListDepartments returns the distinct department codes, without the
// reserved one, sorted.
func (r *PostgresRepo) ListDepartments(ctx context.Context) ([]string, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
        SELECT DISTINCT dzial
        FROM bokser_sprawy
        WHERE dzial IS NOT NULL AND dzial <> $1
        ORDER BY dzial
    `, query.ReservedDepartment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListCases runs the count and data queries for one listing page. The
// caller guards against an empty filter; this method trusts its input.
func (r *PostgresRepo) ListCases(ctx context.Context, f query.CaseFilter) (int, []CaseRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	b := query.NewBuilder()
	f.Apply(b)
	where := b.Where()

	countQuery := `SELECT COUNT(DISTINCT s.nr_sprawy) AS total ` + caseListBase + where
	countArgs := append([]interface{}{}, b.Args()...)

	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return 0, nil, err
	}

	dataQuery := `
        SELECT DISTINCT
            s.nr_sprawy,
            (SELECT string_agg(DISTINCT z_inner.przedmiot, E'\n' ORDER BY z_inner.przedmiot)
               FROM bokser_zadania z_inner
              WHERE z_inner.nr_spr = s.nr_sprawy AND z_inner.przedmiot IS NOT NULL) AS lista_przedmiotow,
            k.nazwa AS nazwa_kontrahenta,
            s.akronim,
            s.kontakt,
            s.data_plan,
            s.godz_plan,
            s.data_zak,
            s.status
    ` + caseListBase + where + `
        ORDER BY s.data_plan DESC, s.godz_plan DESC
        OFFSET ` + b.Bind(f.Offset()) + ` LIMIT ` + b.Bind(f.Limit)

	rows, err := r.DB.QueryContext(ctx, dataQuery, b.Args()...)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	out := []CaseRow{}
	for rows.Next() {
		var c CaseRow
		if err := rows.Scan(
			&c.CaseNumber, &c.Subjects, &c.ContractorName, &c.Acronym,
			&c.Contact, &c.PlannedDate, &c.PlannedTime, &c.ClosedDate, &c.Status,
		); err != nil {
			return 0, nil, err
		}
		out = append(out, c)
	}
	return total, out, rows.Err()
}

// ListCaseTasks returns the tasks of one case, newest first.
func (r *PostgresRepo) ListCaseTasks(ctx context.Context, caseNumber string) ([]TaskRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
        SELECT czynnosc, przedmiot, nr_wersji, wykonawca, data_wyk, status, uwagi
        FROM bokser_zadania
        WHERE nr_spr = $1
        ORDER BY data_zad DESC
    `, caseNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TaskRow{}
	for rows.Next() {
		var t TaskRow
		if err := rows.Scan(
			&t.Activity, &t.Subject, &t.Version, &t.Servicer,
			&t.CompletedDate, &t.Status, &t.Remarks,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetCaseDetails returns the detail record of one case with its
// remarks and subject lists concatenated. sql.ErrNoRows when the case
// number is unknown.
func (r *PostgresRepo) GetCaseDetails(ctx context.Context, caseNumber string) (*CaseDetailsRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	row := r.DB.QueryRowContext(ctx, `
        SELECT
            s.akronim, s.data_zak, s.wlasciciel, s.kto, s.kontakt, s.opis,
            (SELECT string_agg(z.uwagi, E'\r\n--------------------\r\n' ORDER BY z.data_zad)
               FROM bokser_zadania z
              WHERE z.nr_spr = s.nr_sprawy AND z.uwagi IS NOT NULL AND z.uwagi <> '') AS wszystkie_uwagi,
            (SELECT string_agg(DISTINCT z.przedmiot, E'\r\n' ORDER BY z.przedmiot)
               FROM bokser_zadania z
              WHERE z.nr_spr = s.nr_sprawy AND z.przedmiot IS NOT NULL AND z.przedmiot <> '') AS wszystkie_przedmioty
        FROM bokser_sprawy s
        WHERE s.nr_sprawy = $1
    `, caseNumber)

	var d CaseDetailsRow
	if err := row.Scan(
		&d.Acronym, &d.ClosedDate, &d.Owner, &d.RegisteredBy,
		&d.Contact, &d.Description, &d.AllRemarks, &d.AllSubjects,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListCaseHistory returns the operation log of one case, newest first.
// Case numbers in the log table carry trailing padding, so both sides
// are trimmed for the match.
func (r *PostgresRepo) ListCaseHistory(ctx context.Context, caseNumber string) ([]HistoryRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
        SELECT kiedy, kto, opis
        FROM bokser_sprawy_op
        WHERE BTRIM(nr_sprawy) = BTRIM($1)
        ORDER BY kiedy DESC
    `, caseNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []HistoryRow{}
	for rows.Next() {
		var h HistoryRow
		if err := rows.Scan(&h.Date, &h.Actor, &h.Description); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// CountOverdueCases counts cases past their planned date that are
// still open or in progress, outside the reserved department.
func (r *PostgresRepo) CountOverdueCases(ctx context.Context) (int, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	var count int
	err := r.DB.QueryRowContext(ctx, `
        SELECT COUNT(*) AS count
        FROM bokser_sprawy
        WHERE data_plan < now()
          AND status IN (1, 2)
          AND dzial <> $1
    `, query.ReservedDepartment).Scan(&count)
	return count, err
}
