package ticket

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Attachment links an uploaded blob to a ticket. The file URL is
// resolved from the blob reference once at registration time and stored
// durably; it is never re-resolved on read.
type Attachment struct {
	id         uint
	ticketID   uint
	fileName   string
	fileURL    string
	fileSize   int64
	uploadedBy uint
	createdAt  time.Time
}

func NewAttachment(
	ticketID uint,
	fileName string,
	fileURL string,
	fileSize int64,
	uploadedBy uint,
) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(strings.TrimSpace(fileName)) == 0 {
		return nil, fmt.Errorf("file name is required")
	}
	if len(strings.TrimSpace(fileURL)) == 0 {
		return nil, fmt.Errorf("file URL is required")
	}
	if fileSize < 0 {
		return nil, fmt.Errorf("file size cannot be negative")
	}
	if uploadedBy == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}

	return &Attachment{
		ticketID:   ticketID,
		fileName:   fileName,
		fileURL:    fileURL,
		fileSize:   fileSize,
		uploadedBy: uploadedBy,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	fileName string,
	fileURL string,
	fileSize int64,
	uploadedBy uint,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if uploadedBy == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}

	return &Attachment{
		id:         id,
		ticketID:   ticketID,
		fileName:   fileName,
		fileURL:    fileURL,
		fileSize:   fileSize,
		uploadedBy: uploadedBy,
		createdAt:  createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) FileURL() string {
	return a.fileURL
}

func (a *Attachment) FileSize() int64 {
	return a.fileSize
}

func (a *Attachment) UploadedBy() uint {
	return a.uploadedBy
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
