package query

import "strings"

// ReservedDepartment is excluded from the department list and from the
// overdue count.
const ReservedDepartment = "MARAT"

// departmentCompetencies maps a department code to the competency flag
// column a servicer must hold for that department's statistics. The
// mapping is a business rule carried over from the production queries;
// flags are OR-combined across the selected departments.
var departmentCompetencies = []struct {
	Departments []string
	FlagColumn  string
}{
	{[]string{"U1S"}, "ser_u1"},
	{[]string{"U3S", "U3E"}, "ser_u3"},
}

// CompetencyCondition renders the OR-combined competency predicate for
// the selected departments, or "" when none of them is gated. The flag
// columns are fixed identifiers, never user input.
func CompetencyCondition(departments []string) string {
	selected := make(map[string]bool, len(departments))
	for _, d := range departments {
		selected[d] = true
	}
	var conds []string
	for _, entry := range departmentCompetencies {
		for _, d := range entry.Departments {
			if selected[d] {
				conds = append(conds, "aser."+entry.FlagColumn+" = 1")
				break
			}
		}
	}
	if len(conds) == 0 {
		return ""
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

// subjectFamilies collapses variant task-subject codes into one family
// for version reporting.
var subjectFamilies = []struct {
	Family  string
	Members []string
}{
	{"PB_EWID", []string{"PB_EWID2", "PB_EWID3"}},
	{"PB_EWID_SRP", []string{"PB_EWID_SRP", "PB_EWID_SRP3"}},
}

// FamilyMembers returns the raw subject codes folded into family, or
// the family itself when it has no aliases.
func FamilyMembers(family string) []string {
	for _, sf := range subjectFamilies {
		if sf.Family == family {
			return sf.Members
		}
	}
	return []string{family}
}

// SubjectFamilyExpr renders the CASE expression normalizing col to its
// subject family. All literals come from the alias table above.
func SubjectFamilyExpr(col string) string {
	var sb strings.Builder
	sb.WriteString("CASE ")
	for _, sf := range subjectFamilies {
		sb.WriteString("WHEN " + col + " IN (" + quoteList(sf.Members) + ") THEN '" + sf.Family + "' ")
	}
	sb.WriteString("ELSE " + col + " END")
	return sb.String()
}

// contractSubjects whitelists, per subject-of-contract category, the
// task subjects that count toward the installed-version reports. Only
// contractors holding an active contract in one of these categories are
// counted.
var contractSubjects = []struct {
	Contract string
	Subjects []string
}{
	{"PB_EWID, PB_EWID_SRP", []string{"PB_EWID2", "PB_EWID3", "PB_EWID_SRP", "PB_EWID_SRP3", "Webservice", "GOSC", "EKSPORT_EWID"}},
	{"PB_USC, EKSPORT_USC", []string{"PESEL_USC", "KONEKTOR_USC", "PB_USC", "USC_2019", "EKSPORT_USC", "USC_2016", "USC_2020"}},
	{"tEZD", []string{"tEZD_micro", "tEZD", "tEZD_USC"}},
	{"AA_USC", []string{"AA_USC"}},
	{"UstalTermin", []string{"UstalTermin_local", "UstalTermin_cloud"}},
}

// ContractWhitelistClause renders the predicate pairing an active
// contract's category with its eligible task subjects. u = contracts,
// z = tasks. All literals come from the whitelist table above.
func ContractWhitelistClause() string {
	var conds []string
	for _, cs := range contractSubjects {
		conds = append(conds,
			"(u.przedmiot_umowy = '"+cs.Contract+"' AND z.przedmiot IN ("+quoteList(cs.Subjects)+"))")
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

func quoteList(vals []string) string {
	quoted := make([]string, len(vals))
	for i, v := range vals {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ",")
}
