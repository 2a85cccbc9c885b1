package usecase

import (
	"time"

	"github.com/plazadecomidas/auth-service/internal/application/dto"
	"github.com/plazadecomidas/auth-service/internal/application/ports"
	"github.com/plazadecomidas/auth-service/internal/domain"
	"github.com/plazadecomidas/auth-service/internal/domain/entity"
	"github.com/plazadecomidas/auth-service/internal/domain/repository"
	"github.com/plazadecomidas/auth-service/internal/domain/validation"
)

// BirthDateLayout formato de la fecha de nacimiento en la API.
const BirthDateLayout = "2006-01-02"

// OwnerUseCase orquesta el registro de propietarios y la consulta de
// propiedad. Cada registro es atómico: o pasan todas las verificaciones y se
// escribe exactamente un usuario con su rol, o no se escribe nada.
type OwnerUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	hasher   ports.PasswordHasher
	now      func() time.Time
}

// NewOwnerUseCase construye el caso de uso con sus puertos de persistencia y hash.
func NewOwnerUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, hasher ports.PasswordHasher) *OwnerUseCase {
	return &OwnerUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
		now:      time.Now,
	}
}

// RegisterOwner registra un propietario de restaurante. El orden de las
// verificaciones es contrato: la primera que falla determina el error
// reportado y ninguna posterior se ejecuta.
//
//  1. campos obligatorios: nombre, apellido, documento, celular, correo, clave, fecha
//  2. formatos: documento numérico, celular, correo, fecha YYYY-MM-DD
//  3. temporales: fecha no futura, mayor de edad (límite estricto)
//  4. unicidad contra el almacén: correo, luego celular, luego documento
//  5. resolución del rol PROPIETARIO (su ausencia es defecto de sistema, no del caller)
//  6. hash de la clave: siempre después de todas las verificaciones
//  7. persistencia y retorno del usuario durable con rol poblado
func (uc *OwnerUseCase) RegisterOwner(in dto.CreateOwnerRequest) (*dto.UserResponse, error) {
	if err := uc.validateRequired(in); err != nil {
		return nil, err
	}
	if err := uc.validateFormats(in); err != nil {
		return nil, err
	}
	birthDate, err := time.ParseInLocation(BirthDateLayout, in.BirthDate, time.UTC)
	if err != nil {
		// DateShape ya pasó; esto solo atrapa fechas imposibles como 2026-02-30
		return nil, domain.NewInvalidFormat(domain.FieldBirthDate)
	}

	now := uc.now()
	if !validation.NotFuture(birthDate, now) {
		return nil, domain.ErrBirthDateInFuture
	}
	if !validation.IsAdult(birthDate, now) {
		return nil, domain.ErrUnderage
	}

	if err := uc.checkUniqueness(in); err != nil {
		return nil, err
	}

	ownerRole, err := uc.roleRepo.FindByName(entity.RolePropietario)
	if err != nil {
		return nil, err
	}
	if ownerRole == nil {
		return nil, domain.ErrRoleNotFound
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	candidate := &entity.User{
		Name:         in.Name,
		LastName:     in.LastName,
		Document:     in.Document,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: hash,
		BirthDate:    birthDate,
		RoleID:       ownerRole.ID,
	}
	saved, err := uc.userRepo.Save(candidate)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, domain.ErrUserNotSaved
	}
	return toUserResponse(saved.WithRole(ownerRole)), nil
}

// IsOwner busca el usuario por ID y resuelve su rol. Un usuario persistido
// siempre referencia un rol válido; si no se puede resolver es una
// inconsistencia de sistema y se reporta como rol no encontrado.
func (uc *OwnerUseCase) IsOwner(userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	role, err := uc.roleRepo.FindByID(user.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}
	return toUserResponse(user.WithRole(role)), nil
}

// validateRequired revisa los campos obligatorios en orden fijo; el primer
// campo vacío corta la operación.
func (uc *OwnerUseCase) validateRequired(in dto.CreateOwnerRequest) error {
	checks := []struct {
		field domain.Field
		value string
	}{
		{domain.FieldName, in.Name},
		{domain.FieldLastName, in.LastName},
		{domain.FieldDocument, in.Document},
		{domain.FieldPhone, in.Phone},
		{domain.FieldEmail, in.Email},
		{domain.FieldPassword, in.Password},
		{domain.FieldBirthDate, in.BirthDate},
	}
	for _, c := range checks {
		if !validation.Required(c.value) {
			return domain.NewMissingField(c.field)
		}
	}
	return nil
}

// validateFormats corre solo cuando todos los obligatorios están presentes.
func (uc *OwnerUseCase) validateFormats(in dto.CreateOwnerRequest) error {
	if !validation.OnlyDigits(in.Document) {
		return domain.NewInvalidFormat(domain.FieldDocument)
	}
	if !validation.PhoneShape(in.Phone) {
		return domain.NewInvalidFormat(domain.FieldPhone)
	}
	if !validation.EmailShape(in.Email) {
		return domain.NewInvalidFormat(domain.FieldEmail)
	}
	if !validation.DateShape(in.BirthDate) {
		return domain.NewInvalidFormat(domain.FieldBirthDate)
	}
	return nil
}

// checkUniqueness consulta el almacén en orden fijo: correo, celular,
// documento. La primera colisión gana. Una carrera entre dos registros
// concurrentes la resuelve el constraint único del almacén, que reporta el
// mismo error de "ya existe".
func (uc *OwnerUseCase) checkUniqueness(in dto.CreateOwnerRequest) error {
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.NewAlreadyExists(domain.FieldEmail, in.Email)
	}
	existing, err = uc.userRepo.FindByPhone(in.Phone)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.NewAlreadyExists(domain.FieldPhone, in.Phone)
	}
	existing, err = uc.userRepo.FindByDocument(in.Document)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.NewAlreadyExists(domain.FieldDocument, in.Document)
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		LastName:  u.LastName,
		Document:  u.Document,
		Phone:     u.Phone,
		Email:     u.Email,
		BirthDate: u.BirthDate.Format(BirthDateLayout),
		CreatedAt: u.CreatedAt,
	}
	if u.Role != nil {
		resp.Role = dto.RoleDTO{
			ID:          u.Role.ID,
			Name:        u.Role.Name,
			Description: u.Role.Description,
		}
	}
	return resp
}
