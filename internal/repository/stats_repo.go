package repository

import (
	"context"
	"database/sql"

	"github.com/technikait/bokser-dashboard-backend/internal/query"
)

type StatusCountRow struct {
	Status      sql.NullInt64
	Count       int
	CaseNumbers sql.NullString
}

type ServicerTaskCountRow struct {
	Servicer  string
	TaskCount int
}

type SubjectCountRow struct {
	Subject   string
	TaskCount int
}

type MonthSubjectCountRow struct {
	Month     int
	Subject   string
	TaskCount int
}

type CompetencyCountRow struct {
	Servicer  string
	Subject   string
	TaskCount int
}

type ProgramServicerCountRow struct {
	Subject   string
	Servicer  string
	TaskCount int
}

type ServicerCaseCountRow struct {
	Servicer  string
	CaseCount int
}

type VersionCountRow struct {
	Subject string
	Version string
	Count   int
}

type VersionBreakdownRow struct {
	Version string
	Count   int
}

// activeServicersCTE selects the users flagged active together with
// their competency flags. Statistics that count per-servicer work join
// it so that former employees drop out of the charts.
const activeServicersCTE = `
        WITH aktywni_serwisanci AS (
            SELECT u.nazwa, up.ser_u1, up.ser_u3, up.ser_erp
            FROM bokser_uzyt u
            LEFT JOIN bokser_upraw up ON u.login = up.uzyt
            WHERE u.aktywny = 1
        )
`

// StatusDistribution groups cases by status. Unlike the other reports
// it counts every status, and its date filter runs on the report date.
func (r *PostgresRepo) StatusDistribution(ctx context.Context, f query.StatsFilter) ([]StatusCountRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	b := query.NewBuilder()
	f.ApplyDateRange(b, "data_zgl")
	f.ApplyDepartments(b, "dzial")

	q := `
        WITH sprawy_filtrowane AS (
            SELECT nr_sprawy, status
            FROM bokser_sprawy
            WHERE status IS NOT NULL AND nr_sprawy IS NOT NULL` + b.Clause() + `
        )
        SELECT
            COUNT(nr_sprawy) AS liczba,
            status,
            string_agg(nr_sprawy, ', ' ORDER BY nr_sprawy) AS numery_spraw
        FROM sprawy_filtrowane
        GROUP BY status
    `

	rows, err := r.DB.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StatusCountRow{}
	for rows.Next() {
		var s StatusCountRow
		if err := rows.Scan(&s.Count, &s.Status, &s.CaseNumbers); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ServicerWorkload counts completed tasks per active servicer.
func (r *PostgresRepo) ServicerWorkload(ctx context.Context, f query.StatsFilter) ([]ServicerTaskCountRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	b := query.NewBuilder()
	f.ApplyDateRange(b, "z.data_wyk")
	f.ApplyDepartments(b, "s.dzial")
	f.ApplyCompetencyGate(b)

	q := activeServicersCTE + `
        SELECT COUNT(z.id_zd) AS liczba_zadan, z.wykonawca AS serwisant
        FROM bokser_zadania AS z
        INNER JOIN bokser_sprawy AS s ON z.nr_spr = s.nr_sprawy
        INNER JOIN aktywni_serwisanci AS aser ON z.wykonawca = aser.nazwa
        WHERE z.status = 3` + b.Clause() + `
        GROUP BY z.wykonawca
        HAVING COUNT(z.id_zd) > 0
        ORDER BY liczba_zadan DESC
    `

	rows, err := r.DB.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ServicerTaskCountRow{}
	for rows.Next() {
		var s ServicerTaskCountRow
		if err := rows.Scan(&s.TaskCount, &s.Servicer); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// TopSubjects returns the ten most-worked task subjects.
func (r *PostgresRepo) TopSubjects(ctx context.Context, f query.StatsFilter) ([]SubjectCountRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	b := query.NewBuilder()
	f.ApplyDateRange(b, "z.data_wyk")
	f.ApplyDepartments(b, "s.dzial")
	f.ApplyCompetencyGate(b)

	q := activeServicersCTE + `
        SELECT z.przedmiot, COUNT(z.id_zd) AS liczba_zadan
        FROM bokser_zadania AS z
        INNER JOIN bokser_sprawy AS s ON z.nr_spr = s.nr_sprawy
        INNER JOIN aktywni_serwisanci AS aser ON z.wykonawca = aser.nazwa
        WHERE z.status = 3 AND z.przedmiot IS NOT NULL AND z.przedmiot <> ''` + b.Clause() + `
        GROUP BY z.przedmiot
        ORDER BY liczba_zadan DESC
        LIMIT 10
    `

	rows, err := r.DB.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SubjectCountRow{}
	for rows.Next() {
		var s SubjectCountRow
		if err := rows.Scan(&s.Subject, &s.TaskCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// YearlyReview breaks down completed tasks of the current calendar
// year by month and subject.
func (r *PostgresRepo) YearlyReview(ctx context.Context, f query.StatsFilter) ([]MonthSubjectCountRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	b := query.NewBuilder()
	f.ApplyDepartments(b, "s.dzial")
	f.ApplyCompetencyGate(b)

	q := activeServicersCTE + `
        SELECT
            EXTRACT(MONTH FROM z.data_wyk)::int AS miesiac,
            z.przedmiot,
            COUNT(z.id_zd) AS liczba_zadan
        FROM bokser_zadania AS z
        INNER JOIN bokser_sprawy AS s ON z.nr_spr = s.nr_sprawy
        INNER JOIN aktywni_serwisanci AS aser ON z.wykonawca = aser.nazwa
        WHERE z.status = 3
          AND z.przedmiot IS NOT NULL AND z.przedmiot <> ''
          AND EXTRACT(YEAR FROM z.data_wyk) = EXTRACT(YEAR FROM now())` + b.Clause() + `
        GROUP BY EXTRACT(MONTH FROM z.data_wyk), z.przedmiot
    `

	rows, err := r.DB.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []MonthSubjectCountRow{}
	for rows.Next() {
		var m MonthSubjectCountRow
		if err := rows.Scan(&m.Month, &m.Subject, &m.TaskCount); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// CompetencyMatrix counts completed tasks per servicer and subject.
func (r *PostgresRepo) CompetencyMatrix(ctx context.Context, f query.StatsFilter) ([]CompetencyCountRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	b := query.NewBuilder()
	f.ApplyDateRange(b, "z.data_wyk")
	f.ApplyDepartments(b, "s.dzial")
	f.ApplyCompetencyGate(b)

	q := activeServicersCTE + `
        SELECT
            z.wykonawca AS serwisant,
            z.przedmiot,
            COUNT(z.id_zd) AS liczba_zadan
        FROM bokser_zadania AS z
        INNER JOIN bokser_sprawy AS s ON z.nr_spr = s.nr_sprawy
        INNER JOIN aktywni_serwisanci AS aser ON z.wykonawca = aser.nazwa
        WHERE z.status = 3
          AND z.przedmiot IS NOT NULL AND z.przedmiot <> ''` + b.Clause() + `
        GROUP BY z.wykonawca, z.przedmiot
        ORDER BY serwisant, liczba_zadan DESC
    `

	rows, err := r.DB.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CompetencyCountRow{}
	for rows.Next() {
		var c CompetencyCountRow
		if err := rows.Scan(&c.Servicer, &c.Subject, &c.TaskCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ProgramServicer counts completed tasks per subject and servicer over
// every servicer, active or not.
func (r *PostgresRepo) ProgramServicer(ctx context.Context, f query.StatsFilter) ([]ProgramServicerCountRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	b := query.NewBuilder()
	f.ApplyDateRangeBoth(b, "z.data_wyk")
	f.ApplyDepartments(b, "s.dzial")

	q := `
        SELECT
            z.przedmiot,
            z.wykonawca,
            COUNT(z.id_zd) AS liczba_zadan
        FROM bokser_zadania AS z
        INNER JOIN bokser_sprawy AS s ON z.nr_spr = s.nr_sprawy
        WHERE z.status = 3
          AND z.przedmiot IS NOT NULL AND z.przedmiot <> ''
          AND z.wykonawca IS NOT NULL AND z.wykonawca <> ''` + b.Clause() + `
        GROUP BY z.przedmiot, z.wykonawca
        ORDER BY z.przedmiot, z.wykonawca
    `

	rows, err := r.DB.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ProgramServicerCountRow{}
	for rows.Next() {
		var p ProgramServicerCountRow
		if err := rows.Scan(&p.Subject, &p.Servicer, &p.TaskCount); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CaseWorkload counts closed cases per servicer, filtered by the case
// closure date.
func (r *PostgresRepo) CaseWorkload(ctx context.Context, f query.StatsFilter) ([]ServicerCaseCountRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	b := query.NewBuilder()
	f.ApplyDateRangeBoth(b, "s.data_zak")
	f.ApplyDepartments(b, "s.dzial")

	q := `
        SELECT
            z.wykonawca AS serwisant,
            COUNT(DISTINCT s.nr_sprawy) AS liczba_spraw
        FROM bokser_zadania AS z
        INNER JOIN bokser_sprawy AS s ON z.nr_spr = s.nr_sprawy
        WHERE s.status = 3
          AND z.wykonawca IS NOT NULL AND z.wykonawca <> ''` + b.Clause() + `
        GROUP BY z.wykonawca
        ORDER BY liczba_spraw DESC
    `

	rows, err := r.DB.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ServicerCaseCountRow{}
	for rows.Next() {
		var s ServicerCaseCountRow
		if err := rows.Scan(&s.Servicer, &s.CaseCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// rankedVersions ranks, per (subject family, contractor), the version
// numbers of completed tasks by case closure recency. Only tasks under
// an unexpired contract whose category whitelists the subject count.
// Rank 1 is the currently installed version.
func rankedVersionsCTE(subjectCond string, withContractors bool) string {
	contractorJoin := ""
	contractorCol := ""
	if withContractors {
		contractorJoin = `
                LEFT JOIN bokser_kontrahenci k ON s.akronim = k.akronim`
		contractorCol = `, k.nazwa AS nazwa_kontrahenta`
	}
	return `
        WITH ranked_versions AS (
            SELECT
                z.przedmiot, z.nr_wersji, s.akronim` + contractorCol + `,
                ROW_NUMBER() OVER (
                    PARTITION BY ` + query.SubjectFamilyExpr("z.przedmiot") + `, s.akronim
                    ORDER BY s.data_zak DESC
                ) AS rn
            FROM bokser_zadania z
            INNER JOIN bokser_sprawy s ON z.nr_spr = s.nr_sprawy` + contractorJoin + `
            INNER JOIN bokser_umowy u ON s.akronim = u.akronim
            WHERE z.status = 3
              AND s.data_zak IS NOT NULL
              AND ` + subjectCond + `
              AND z.nr_wersji IS NOT NULL AND z.nr_wersji <> ''
              AND u.koniec_umowy >= now()
              AND ` + query.ContractWhitelistClause() + `
        )`
}

// CurrentVersions returns the installed-version distribution across
// every whitelisted subject family.
func (r *PostgresRepo) CurrentVersions(ctx context.Context) ([]VersionCountRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	b := query.NewBuilder()
	familyExpr := query.SubjectFamilyExpr("przedmiot")
	q := rankedVersionsCTE("z.przedmiot IS NOT NULL AND z.przedmiot <> ''", false) + `
        SELECT
            ` + familyExpr + ` AS przedmiot,
            nr_wersji,
            COUNT(*) AS ilosc
        FROM ranked_versions
        WHERE rn = 1
        GROUP BY ` + familyExpr + `, nr_wersji
        ORDER BY przedmiot, nr_wersji
    `

	rows, err := r.DB.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []VersionCountRow{}
	for rows.Next() {
		var v VersionCountRow
		if err := rows.Scan(&v.Subject, &v.Version, &v.Count); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// VersionBreakdown returns the version distribution of one subject
// family, newest version first.
func (r *PostgresRepo) VersionBreakdown(ctx context.Context, subject string) ([]VersionBreakdownRow, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	b := query.NewBuilder()
	subjectCond := b.InCondition("z.przedmiot", query.FamilyMembers(subject))

	q := rankedVersionsCTE(subjectCond, false) + `
        SELECT nr_wersji, COUNT(*) AS ilosc
        FROM ranked_versions
        WHERE rn = 1
        GROUP BY nr_wersji
        ORDER BY nr_wersji DESC
    `

	rows, err := r.DB.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []VersionBreakdownRow{}
	for rows.Next() {
		var v VersionBreakdownRow
		if err := rows.Scan(&v.Version, &v.Count); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ContractorsByVersion lists the contractors currently on one version
// of one subject family, sorted by name.
func (r *PostgresRepo) ContractorsByVersion(ctx context.Context, subject, version string) ([]string, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	b := query.NewBuilder()
	subjectCond := b.InCondition("z.przedmiot", query.FamilyMembers(subject))
	versionParam := b.Bind(version)

	q := rankedVersionsCTE(subjectCond+" AND k.nazwa IS NOT NULL", true) + `
        SELECT nazwa_kontrahenta
        FROM ranked_versions
        WHERE rn = 1 AND nr_wersji = ` + versionParam + `
        ORDER BY nazwa_kontrahenta
    `

	rows, err := r.DB.QueryContext(ctx, q, b.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
