// Package deliveryrepo maps the delivery aggregate to the "deliveries" table. A delivery row
// belongs to its order row; the time record and the issue are stored inline.
package deliveryrepo

import (
	"time"

	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/core/domain/model/delivery"
	"tracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
type DeliveryDTO struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex"`
	Order     orderrepo.OrderDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	CourierID *uuid.UUID         `gorm:"type:uuid;index"`
	Time      TimeRecordDTO      `gorm:"embedded"`
	Issue     IssueDTO           `gorm:"embedded;embeddedPrefix:issue_"`
	Rating    RatingDTO          `gorm:"embedded;embeddedPrefix:rating_"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// TimeRecordDTO holds the lifecycle timestamps; NULL means the stage was never reported.
type TimeRecordDTO struct {
	ReadyTime     *time.Time `gorm:"type:timestamptz"`
	PickUpTime    *time.Time `gorm:"type:timestamptz"`
	DeliveredTime *time.Time `gorm:"type:timestamptz"`
}

// IssueDTO is NULL in both columns when nothing was reported.
type IssueDTO struct {
	Type        *string `gorm:"type:varchar(255)"`
	Description *string `gorm:"type:text"`
}

// RatingDTO is NULL in both columns while the order is unrated.
type RatingDTO struct {
	Grade   *int    `gorm:"type:smallint"`
	Comment *string `gorm:"type:text"`
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var courierID *uuid.UUID
	if id := d.CourierID(); id != nil {
		raw := id.Value()
		courierID = &raw
	}

	var issue IssueDTO
	if i := d.Issue(); i != nil {
		kind, description := i.Type(), i.Description()
		issue = IssueDTO{Type: &kind, Description: &description}
	}

	var rating RatingDTO
	if r := d.Rating(); r != nil {
		grade, comment := r.Grade(), r.Comment()
		rating = RatingDTO{Grade: &grade, Comment: &comment}
	}

	record := d.Time()
	o := d.Order()

	return DeliveryDTO{
		ID:        d.ID().Value(),
		OrderID:   o.ID().Value(),
		Order:     orderrepo.FromDomain(o),
		CourierID: courierID,
		Time: TimeRecordDTO{
			ReadyTime:     record.ReadyTime(),
			PickUpTime:    record.PickUpTime(),
			DeliveredTime: record.DeliveredTime(),
		},
		Issue:  issue,
		Rating: rating,
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	o, err := orderrepo.ToDomain(dto.Order)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		id := kernel.UUIDFrom(*dto.CourierID)
		courierID = &id
	}

	record, err := delivery.NewTimeRecord(utc(dto.Time.ReadyTime), utc(dto.Time.PickUpTime), utc(dto.Time.DeliveredTime))
	if err != nil {
		return nil, err
	}

	var issue *delivery.Issue
	if dto.Issue.Type != nil {
		var description string
		if dto.Issue.Description != nil {
			description = *dto.Issue.Description
		}
		restored, issueErr := delivery.NewIssue(*dto.Issue.Type, description)
		if issueErr != nil {
			return nil, issueErr
		}
		issue = &restored
	}

	var rating *delivery.Rating
	if dto.Rating.Grade != nil {
		var comment string
		if dto.Rating.Comment != nil {
			comment = *dto.Rating.Comment
		}
		restored, ratingErr := delivery.NewRating(*dto.Rating.Grade, comment)
		if ratingErr != nil {
			return nil, ratingErr
		}
		rating = &restored
	}

	return delivery.RestoreDelivery(kernel.UUIDFrom(dto.ID), o, courierID, record, issue, rating)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
