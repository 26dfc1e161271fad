package sqlite

import (
	"github.com/goserg/engelserver/gen/model"
	"github.com/goserg/engelserver/internal/domain"

	"github.com/google/uuid"
)

type userDest struct {
	model.Users
	UserProfiles model.UserProfiles
	UserRoles    []model.UserRoles
}

func convertUserToDomain(dest userDest) (domain.User, error) {
	id, err := uuid.Parse(dest.Users.ID)
	if err != nil {
		return domain.User{}, err
	}
	p := dest.UserProfiles
	u := domain.User{
		ID:           id,
		Name:         dest.Users.Name,
		Email:        dest.Users.Email,
		Roles:        make([]string, 0, len(dest.UserRoles)),
		RegisteredAt: dest.Users.CreatedAt,
		PersonalData: domain.PersonalData{
			Pronoun:              p.Pronoun,
			FirstName:            p.FirstName,
			LastName:             p.LastName,
			ShirtSize:            p.ShirtSize,
			PlannedArrivalDate:   p.PlannedArrivalDate,
			PlannedDepartureDate: p.PlannedDepartureDate,
		},
		Contact: domain.Contact{
			DECT:   p.Dect,
			Mobile: p.Mobile,
		},
		Settings: domain.Settings{
			Language:       p.Language,
			Theme:          int(p.Theme),
			EmailHuman:     p.EmailHuman,
			EmailShiftinfo: p.EmailShiftinfo,
			EmailNews:      p.EmailNews,
			EmailGoody:     p.EmailGoody,
			MobileShow:     p.MobileShow,
		},
	}
	for _, role := range dest.UserRoles {
		u.Roles = append(u.Roles, role.Role)
	}
	return u, nil
}

func convertProfileFromDomain(user domain.User) model.UserProfiles {
	return model.UserProfiles{
		UserID:               user.ID.String(),
		Pronoun:              user.PersonalData.Pronoun,
		FirstName:            user.PersonalData.FirstName,
		LastName:             user.PersonalData.LastName,
		ShirtSize:            user.PersonalData.ShirtSize,
		PlannedArrivalDate:   user.PersonalData.PlannedArrivalDate,
		PlannedDepartureDate: user.PersonalData.PlannedDepartureDate,
		Dect:                 user.Contact.DECT,
		Mobile:               user.Contact.Mobile,
		Language:             user.Settings.Language,
		Theme:                int32(user.Settings.Theme),
		EmailHuman:           user.Settings.EmailHuman,
		EmailShiftinfo:       user.Settings.EmailShiftinfo,
		EmailNews:            user.Settings.EmailNews,
		EmailGoody:           user.Settings.EmailGoody,
		MobileShow:           user.Settings.MobileShow,
	}
}

func convertAngelTypeToDomain(at model.AngelTypes) domain.AngelType {
	return domain.AngelType{
		ID:          intID(at.ID),
		Name:        at.Name,
		Description: at.Description,
		Restricted:  at.Restricted,
	}
}

func convertAngelTypesToDomain(ats []model.AngelTypes) []domain.AngelType {
	converted := make([]domain.AngelType, 0, len(ats))
	for _, at := range ats {
		converted = append(converted, convertAngelTypeToDomain(at))
	}
	return converted
}

func convertUserAngelTypeToDomain(uat model.UserAngelTypes) (domain.UserAngelType, error) {
	userID, err := uuid.Parse(uat.UserID)
	if err != nil {
		return domain.UserAngelType{}, err
	}
	converted := domain.UserAngelType{
		ID:          intID(uat.ID),
		UserID:      userID,
		AngelTypeID: int(uat.AngelTypeID),
		Supporter:   uat.Supporter,
	}
	if uat.ConfirmUserID != nil {
		confirmID, err := uuid.Parse(*uat.ConfirmUserID)
		if err != nil {
			return domain.UserAngelType{}, err
		}
		converted.ConfirmUserID = &confirmID
	}
	return converted, nil
}

func convertUserAngelTypesToDomain(uats []model.UserAngelTypes) ([]domain.UserAngelType, error) {
	converted := make([]domain.UserAngelType, 0, len(uats))
	for _, uat := range uats {
		c, err := convertUserAngelTypeToDomain(uat)
		if err != nil {
			return nil, err
		}
		converted = append(converted, c)
	}
	return converted, nil
}

func intID(id *int32) int {
	if id == nil {
		return 0
	}
	return int(*id)
}
