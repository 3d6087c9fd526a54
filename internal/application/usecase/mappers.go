package usecase

import (
	"github.com/jhoicas/giftcert-api/internal/application/dto"
	"github.com/jhoicas/giftcert-api/internal/domain/entity"
)

func toGiftCertificateResponse(c *entity.GiftCertificate) dto.GiftCertificateResponse {
	out := dto.GiftCertificateResponse{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Price:          c.Price,
		Duration:       c.Duration,
		CreateDate:     c.CreateDate,
		LastUpdateDate: c.LastUpdateDate,
	}
	if c.Tags != nil {
		out.Tags = make([]dto.TagResponse, 0, len(c.Tags))
		for i := range c.Tags {
			out.Tags = append(out.Tags, toTagResponse(&c.Tags[i]))
		}
	}
	return out
}

func toTagResponse(t *entity.Tag) dto.TagResponse {
	return dto.TagResponse{ID: t.ID, Name: t.Name}
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Username: u.Username}
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	out := dto.OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		Cost:         o.Cost,
		PurchaseDate: o.PurchaseDate,
	}
	if o.Certificates != nil {
		out.Certificates = make([]dto.GiftCertificateResponse, 0, len(o.Certificates))
		for i := range o.Certificates {
			out.Certificates = append(out.Certificates, toGiftCertificateResponse(&o.Certificates[i]))
		}
	}
	return out
}

func toTagStatResponse(s entity.TagStat) dto.TagStatResponse {
	return dto.TagStatResponse{Tag: toTagResponse(&s.Tag), OrderCount: s.OrderCount, MaxCost: s.MaxCost}
}
