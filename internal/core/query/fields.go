package query

// Allowed sort/filter fields per entity. The exposed names, including the
// "RelaseDate" spelling, are part of the API contract and must stay stable.

var AuthorFields = Fields{
	"Name":    {Column: "name", Kind: Text},
	"Surname": {Column: "surname", Kind: Text},
}

var BookFields = Fields{
	"Title":      {Column: "title", Kind: Text},
	"RelaseDate": {Column: "release_date", Kind: Date},
	"ISBN":       {Column: "isbn", Kind: Text},
}

var GenreFields = Fields{
	"Name":        {Column: "name", Kind: Text},
	"Description": {Column: "description", Kind: Text},
}

var EmployeeFields = Fields{
	"Surname":     {Column: "surname", Kind: Text},
	"Name":        {Column: "name", Kind: Text},
	"JobPosition": {Column: "job_position", Kind: Text},
}

var MemberFields = Fields{
	"Name":        {Column: "name", Kind: Text},
	"Surname":     {Column: "surname", Kind: Text},
	"Birthdate":   {Column: "birthdate", Kind: Date},
	"Address":     {Column: "address", Kind: Text},
	"PhoneNumber": {Column: "phone_number", Kind: Text},
	"Email":       {Column: "email", Kind: Text},
}

var PublishingHouseFields = Fields{
	"Name":           {Column: "name", Kind: Text},
	"FoundationYear": {Column: "foundation_year", Kind: Numeric},
	"Address":        {Column: "address", Kind: Text},
	"Website":        {Column: "website", Kind: Text},
}

var RentFields = Fields{
	"RentDate":          {Column: "rent_date", Kind: Date},
	"PlannedReturnDate": {Column: "planned_return_date", Kind: Date},
}

// Default sort fields per entity listing.
const (
	AuthorDefaultSort          = "Surname"
	BookDefaultSort            = "Title"
	GenreDefaultSort           = "Name"
	EmployeeDefaultSort        = "Surname"
	MemberDefaultSort          = "Surname"
	PublishingHouseDefaultSort = "Name"
	RentDefaultSort            = "RentDate"
)
