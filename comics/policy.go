package comics

// Op tags every operation a session can dispatch. The tags are the public
// command surface; the policy table below is the single place that says who
// may do what.
type Op string

const (
	OpRegisterUser     Op = "register-user"
	OpFindComic        Op = "find-comic"
	OpViewSelf         Op = "view-self"
	OpListComics       Op = "list-comics"
	OpReserveComic     Op = "reserve-comic"
	OpPurchaseReserved Op = "purchase-reserved"
	OpAddComic         Op = "add-comic"
	OpRemoveComic      Op = "remove-comic"
	OpExportReport     Op = "export-report"
)

// permissions lists, per operation, the roles allowed to perform it.
var permissions = map[Op]map[Role]bool{
	OpRegisterUser:     {RoleAdmin: true, RoleCustomer: true},
	OpFindComic:        {RoleAdmin: true, RoleCustomer: true},
	OpViewSelf:         {RoleAdmin: true, RoleCustomer: true},
	OpListComics:       {RoleAdmin: true, RoleCustomer: true},
	OpReserveComic:     {RoleCustomer: true},
	OpPurchaseReserved: {RoleCustomer: true},
	OpAddComic:         {RoleAdmin: true},
	OpRemoveComic:      {RoleAdmin: true},
	OpExportReport:     {RoleAdmin: true},
}

// Allows reports whether role may perform op. Unknown operations are denied.
func Allows(role Role, op Op) bool {
	return permissions[op][role]
}
