package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

const minCommentLength = 10

type ContactService interface {
	Submit(ctx context.Context, user utils.SessionUser, req *request.ContactRequest) (*response.ContactResponse, error)
	List(ctx context.Context) ([]response.ContactResponse, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	log         *zap.Logger
	now         func() time.Time
}

func NewContactService(contactRepo repository.ContactRepository, log *zap.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		log:         log.With(zap.String("service", "contact")),
		now:         time.Now,
	}
}

// Submit stores the comment with a snapshot of the sender's identity.
func (s *contactService) Submit(ctx context.Context, user utils.SessionUser, req *request.ContactRequest) (*response.ContactResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	comment := strings.TrimSpace(req.Comment)
	if utf8.RuneCountInString(comment) < minCommentLength {
		return nil, invalidField("comment", "Comment must be at least 10 characters")
	}

	dob, err := utils.ParseWireDate(user.DateOfBirth)
	if err != nil {
		return nil, err
	}

	contact := &entity.Contact{
		ContactID:   utils.GenerateID(utils.PrefixContact),
		UserPhone:   user.Phone,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DateOfBirth: dob,
		Email:       user.Email,
		Comment:     comment,
		CreatedAt:   s.now(),
	}
	if user.Gender != "" {
		gender := user.Gender
		contact.Gender = &gender
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.log.Info("Contact submitted", zap.String("contact_id", contact.ContactID))

	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (s *contactService) List(ctx context.Context) ([]response.ContactResponse, error) {
	contacts, err := s.contactRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, response.ContactToResponse(c))
	}
	return out, nil
}
