package contact

// Choice is a selectable option of the contact form.
type Choice struct {
	Code  string
	Label string
}

// Industries lists the industry codes offered by the form.
var Industries = []Choice{
	{"education", "Educación"},
	{"retail", "Retail"},
	{"healthcare", "Salud"},
	{"finance", "Finanzas"},
	{"manufacturing", "Manufactura"},
	{"logistics", "Logística"},
	{"legal", "Legal"},
	{"services", "Servicios"},
	{"other", "Otro"},
}

// CompanySizes lists the company size brackets offered by the form.
var CompanySizes = []Choice{
	{"startup", "Startup (1-10)"},
	{"small", "Pequeña (11-50)"},
	{"medium", "Mediana (51-200)"},
	{"large", "Grande (201-1000)"},
	{"enterprise", "Empresa (1000+)"},
}

// Codes returns the codes of choices in order.
func Codes(choices []Choice) []string {
	codes := make([]string, len(choices))
	for i, c := range choices {
		codes[i] = c.Code
	}
	return codes
}

// Label returns the display label for code, or code itself when unknown.
func Label(choices []Choice, code string) string {
	for _, c := range choices {
		if c.Code == code {
			return c.Label
		}
	}
	return code
}
