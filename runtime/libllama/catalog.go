package libllama

// Group classifies catalogue entries the way the C header groups them.
type Group string

// Catalogue groups.
const (
	GroupIO      Group = "io"
	GroupMath    Group = "math"
	GroupRefs    Group = "refs"
	GroupCasts   Group = "casts"
	GroupStrings Group = "strings"
)

// Entry describes one catalogue function: its C ABI name, its C signature
// and the group it belongs to.
type Entry struct {
	Name      string
	Signature string
	Group     Group
}

var catalog = []Entry{
	{"llama_print_int", "void llama_print_int(int n)", GroupIO},
	{"llama_print_bool", "void llama_print_bool(bool b)", GroupIO},
	{"llama_print_char", "void llama_print_char(char c)", GroupIO},
	{"llama_print_float", "void llama_print_float(double d)", GroupIO},
	{"llama_print_string", "void llama_print_string(const char *s)", GroupIO},
	{"llama_read_int", "int llama_read_int(void)", GroupIO},
	{"llama_read_bool", "bool llama_read_bool(void)", GroupIO},
	{"llama_read_char", "char llama_read_char(void)", GroupIO},
	{"llama_read_float", "double llama_read_float(void)", GroupIO},
	{"llama_read_string", "void llama_read_string(char *s, int n)", GroupIO},

	{"llama_abs", "int llama_abs(int n)", GroupMath},
	{"llama_fabs", "double llama_fabs(double d)", GroupMath},
	{"llama_sqrt", "double llama_sqrt(double d)", GroupMath},
	{"llama_sin", "double llama_sin(double d)", GroupMath},
	{"llama_cos", "double llama_cos(double d)", GroupMath},
	{"llama_tan", "double llama_tan(double d)", GroupMath},
	{"llama_atan", "double llama_atan(double d)", GroupMath},
	{"llama_exp", "double llama_exp(double d)", GroupMath},
	{"llama_ln", "double llama_ln(double d)", GroupMath},
	{"llama_pi", "double llama_pi(void)", GroupMath},

	{"llama_incr", "void llama_incr(int *n)", GroupRefs},
	{"llama_decr", "void llama_decr(int *n)", GroupRefs},

	{"llama_float_of_int", "double llama_float_of_int(int n)", GroupCasts},
	{"llama_int_of_float", "int llama_int_of_float(double d)", GroupCasts},
	{"llama_round", "int llama_round(double d)", GroupCasts},
	{"llama_int_of_char", "int llama_int_of_char(char c)", GroupCasts},
	{"llama_char_of_int", "char llama_char_of_int(int n)", GroupCasts},

	{"llama_strlen", "int llama_strlen(const char *s)", GroupStrings},
	{"llama_strcmp", "int llama_strcmp(const char *a, const char *b)", GroupStrings},
	{"llama_strcpy", "void llama_strcpy(char *dst, const char *src)", GroupStrings},
	{"llama_strcat", "void llama_strcat(char *dst, const char *src)", GroupStrings},
}

// Catalog returns the full catalogue in header order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}
