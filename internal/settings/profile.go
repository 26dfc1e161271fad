package settings

import (
	"context"
	"net/mail"
	"unicode/utf8"

	"github.com/goserg/engelserver/internal/config"
	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/render"
)

// ProfileInput holds the submitted profile form.
type ProfileInput struct {
	Pronoun              string
	FirstName            string
	LastName             string
	PlannedArrivalDate   string
	PlannedDepartureDate string
	DECT                 string
	Mobile               string
	MobileShow           bool
	Email                string
	EmailShiftinfo       bool
	EmailNews            bool
	EmailHuman           bool
	EmailGoody           bool
	ShirtSize            string
}

type ProfileView struct {
	User        domain.User
	Features    config.Features
	TShirtSizes map[string]string
	Event       config.Event
	Menu        []MenuItem
}

// optionalField is one feature switched part of the profile. apply copies
// the submitted value and validates it, clear resets it when the feature is
// off.
type optionalField struct {
	enabled func(config.Features) bool
	apply   func(s *Service, u *domain.User, in ProfileInput, verr *ValidationError)
	clear   func(u *domain.User)
}

var optionalFields = []optionalField{
	{
		enabled: func(f config.Features) bool { return f.Pronoun },
		apply: func(_ *Service, u *domain.User, in ProfileInput, verr *ValidationError) {
			maxLength(verr, "pronoun", in.Pronoun, 15)
			u.PersonalData.Pronoun = in.Pronoun
		},
		clear: func(u *domain.User) { u.PersonalData.Pronoun = "" },
	},
	{
		enabled: func(f config.Features) bool { return f.UserName },
		apply: func(_ *Service, u *domain.User, in ProfileInput, verr *ValidationError) {
			maxLength(verr, "first_name", in.FirstName, 64)
			maxLength(verr, "last_name", in.LastName, 64)
			u.PersonalData.FirstName = in.FirstName
			u.PersonalData.LastName = in.LastName
		},
		clear: func(u *domain.User) {
			u.PersonalData.FirstName = ""
			u.PersonalData.LastName = ""
		},
	},
	{
		enabled: func(f config.Features) bool { return f.PlannedArrival },
		apply: func(_ *Service, u *domain.User, in ProfileInput, verr *ValidationError) {
			if in.PlannedArrivalDate == "" {
				verr.add("planned_arrival_date", "validation.required")
			}
			arrival, err := render.ParseDate(in.PlannedArrivalDate)
			if err != nil {
				verr.add("planned_arrival_date", "validation.date")
			}
			departure, err := render.ParseDate(in.PlannedDepartureDate)
			if err != nil {
				verr.add("planned_departure_date", "validation.date")
			}
			u.PersonalData.PlannedArrivalDate = arrival
			u.PersonalData.PlannedDepartureDate = departure
		},
		clear: func(u *domain.User) {
			u.PersonalData.PlannedArrivalDate = nil
			u.PersonalData.PlannedDepartureDate = nil
		},
	},
	{
		enabled: func(f config.Features) bool { return f.DECT },
		apply: func(_ *Service, u *domain.User, in ProfileInput, verr *ValidationError) {
			maxLength(verr, "dect", in.DECT, 40)
			u.Contact.DECT = in.DECT
		},
		clear: func(u *domain.User) { u.Contact.DECT = "" },
	},
	{
		enabled: func(f config.Features) bool { return f.MobileShow },
		apply: func(_ *Service, u *domain.User, in ProfileInput, _ *ValidationError) {
			u.Settings.MobileShow = in.MobileShow
		},
		clear: func(u *domain.User) { u.Settings.MobileShow = false },
	},
	{
		enabled: func(f config.Features) bool { return f.Goody },
		apply: func(_ *Service, u *domain.User, in ProfileInput, _ *ValidationError) {
			u.Settings.EmailGoody = in.EmailGoody
		},
		clear: func(u *domain.User) { u.Settings.EmailGoody = false },
	},
	{
		enabled: func(f config.Features) bool { return f.TShirtSize },
		apply: func(s *Service, u *domain.User, in ProfileInput, verr *ValidationError) {
			if in.ShirtSize == "" {
				verr.add("shirt_size", "validation.required")
			} else if _, ok := s.cfg.TShirtSizes[in.ShirtSize]; !ok {
				verr.add("shirt_size", "validation.in")
			}
			u.PersonalData.ShirtSize = in.ShirtSize
		},
		clear: func(u *domain.User) { u.PersonalData.ShirtSize = "" },
	},
}

func maxLength(verr *ValidationError, field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		verr.add(field, "validation.max", limit)
	}
}

func (s *Service) Profile(user domain.User) ProfileView {
	return ProfileView{
		User:        user,
		Features:    s.cfg.Features,
		TShirtSizes: s.cfg.TShirtSizes,
		Event:       s.cfg.Event,
		Menu:        s.Menu(),
	}
}

// SaveProfile applies in to the user. Fields of disabled features are reset.
func (s *Service) SaveProfile(ctx context.Context, user domain.User, in ProfileInput) (Notice, error) {
	verr := &ValidationError{}
	updated := user

	if in.Email == "" {
		verr.add("email", "validation.required")
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		verr.add("email", "validation.email")
	}
	maxLength(verr, "mobile", in.Mobile, 40)
	updated.Email = in.Email
	updated.Contact.Mobile = in.Mobile
	updated.Settings.EmailShiftinfo = in.EmailShiftinfo
	updated.Settings.EmailNews = in.EmailNews
	updated.Settings.EmailHuman = in.EmailHuman

	features := s.cfg.Features
	for _, f := range optionalFields {
		if f.enabled(features) {
			f.apply(s, &updated, in, verr)
		} else {
			f.clear(&updated)
		}
	}
	if err := verr.errOrNil(); err != nil {
		return Notice{}, err
	}

	if features.PlannedArrival {
		if err := s.checkDates(updated.PersonalData); err != nil {
			return Notice{}, err
		}
	}

	err := s.users.UpdateProfile(ctx, updated)
	if err != nil {
		return Notice{}, err
	}
	return Notice{Key: "settings.profile.success"}, nil
}

func (s *Service) checkDates(pd domain.PersonalData) error {
	buildup, teardown := s.cfg.Event.BuildupStart, s.cfg.Event.TeardownEnd
	arrival, departure := pd.PlannedArrivalDate, pd.PlannedDepartureDate

	if arrival != nil {
		if buildup != nil && arrival.Before(*buildup) {
			return &FormError{Key: "settings.profile.planned_arrival_date.invalid"}
		}
		if teardown != nil && arrival.After(*teardown) {
			return &FormError{Key: "settings.profile.planned_arrival_date.invalid"}
		}
	}
	if departure != nil {
		if arrival != nil && departure.Before(*arrival) {
			return &FormError{Key: "settings.profile.planned_departure_date.invalid"}
		}
		if teardown != nil && departure.After(*teardown) {
			return &FormError{Key: "settings.profile.planned_departure_date.invalid"}
		}
	}
	return nil
}
