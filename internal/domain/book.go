package domain

// Book is a catalog record as stored by the catalog backend.
type Book struct {
	ID              string `json:"_id,omitempty"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre,omitempty"`
	Description     string `json:"description,omitempty"`
	ISBN            string `json:"isbn"`
	TotalCopies     int    `json:"totalCopies"`
	AvailableCopies int    `json:"availableCopies,omitempty"`
	CoverImage      string `json:"coverImage,omitempty"`
}

// RegisterBookRequest represents a new book submitted for the catalog. ISBN
// is optional; a random ISBN-13 is assigned when it is empty.
type RegisterBookRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=300"`
	Author      string `json:"author" binding:"required,min=1,max=200"`
	Genre       string `json:"genre" binding:"max=100"`
	Description string `json:"description" binding:"max=5000"`
	ISBN        string `json:"isbn" binding:"omitempty,isbn"`
	TotalCopies int    `json:"totalCopies" binding:"omitempty,min=1,max=10000"`
	CoverImage  string `json:"coverImage" binding:"omitempty,url"`
}

// RegisterBookResponse is the created record plus the display form of its ISBN.
type RegisterBookResponse struct {
	Book          *Book  `json:"book"`
	ISBNFormatted string `json:"isbn_formatted"`
	ISBNGenerated bool   `json:"isbn_generated"`
}

// UpdateBookRequest replaces a catalog record. Unlike registration the ISBN is
// required; updates never assign one.
type UpdateBookRequest struct {
	Title           string `json:"title" binding:"required,min=1,max=300"`
	Author          string `json:"author" binding:"required,min=1,max=200"`
	Genre           string `json:"genre" binding:"max=100"`
	Description     string `json:"description" binding:"max=5000"`
	ISBN            string `json:"isbn" binding:"required,isbn"`
	TotalCopies     int    `json:"totalCopies" binding:"required,min=1,max=10000"`
	AvailableCopies int    `json:"availableCopies" binding:"min=0,max=10000"`
	CoverImage      string `json:"coverImage" binding:"omitempty,url"`
}

// BookResponse is a catalog record plus the display form of its ISBN.
type BookResponse struct {
	Book          *Book  `json:"book"`
	ISBNFormatted string `json:"isbn_formatted"`
}

// BookListResponse lists catalog records.
type BookListResponse struct {
	Books []BookResponse `json:"books"`
	Count int            `json:"count"`
}
