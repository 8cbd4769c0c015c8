package service

import (
	"context"
	"fmt"
	"lux/config"
	"lux/infras/jwt"
	"lux/infras/otel"
	"lux/internal/domains/auth/model/dto"
	staffModel "lux/internal/domains/staff/model"
	staffRepo "lux/internal/domains/staff/repository"
	userModel "lux/internal/domains/user/model"
	userRepo "lux/internal/domains/user/repository"
	"lux/shared"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/failure"
	"lux/shared/password"
	"lux/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	StaffLogin(ctx context.Context, req dto.StaffLoginRequest) (dto.StaffLoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
	Me(ctx context.Context, userID string) (dto.MeResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	staffRepo  staffRepo.Staff
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, staffRepo staffRepo.Staff, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		staffRepo:  staffRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    userModel.TableName,
			},
		},
	}

	exists, err := s.userRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered")
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	username := constant.ContextGuest

	if err = s.userRepo.Insert(ctx, req.ToUserModel(username, hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    userModel.TableName,
			},
		},
	}

	user, err := s.userRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password")
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password")
	}

	if !user.Active {
		return res, failure.BadRequestFromString("user account is deactivated")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Level)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, user.ID)

	if err := s.userRepo.Update(ctx, updatedFields, emailFilter); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// StaffLogin authenticates front-desk staff by role and password. The role is
// shared across a team, so the password decides which member is logging in;
// when two active members of the same role share a password the login is
// ambiguous and rejected.
func (s *serviceImpl) StaffLogin(ctx context.Context, req dto.StaffLoginRequest) (res dto.StaffLoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StaffLogin")
	defer scope.End()
	defer scope.TraceIfError(err)

	roleFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    staffModel.FieldRole,
				Operator: gDto.FilterOperatorIEq,
				Value:    req.Role,
				Table:    staffModel.TableName,
			},
			gDto.Filter{
				Field:    staffModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.StaffStatusActive,
				Table:    staffModel.TableName,
			},
		},
	}

	candidates, err := s.staffRepo.GetAll(ctx, gDto.QueryParams{}, roleFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff members")

		return res, fmt.Errorf("failed to get staff members: %w", err)
	}

	var matched []staffModel.StaffMember

	for _, candidate := range candidates {
		if password.Verify(req.Password, candidate.Password) == nil {
			matched = append(matched, candidate)
		}
	}

	if len(matched) == 0 {
		log.Warn().Str("role", req.Role).Msg("staff login attempt with wrong credentials")

		return res, failure.BadRequestFromString("invalid role or password")
	}

	if len(matched) > 1 {
		return res, failure.Conflict("multiple staff members match, contact an administrator")
	}

	staff := matched[0]

	tokenPair, err := s.jwtService.GenerateTokenPair(staff.ID, staff.Email, staff.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.StaffID = staff.ID
	res.Name = staff.Name
	res.Role = staff.Role

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    userModel.TableName,
			},
		},
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return failure.NotFound("user not found")
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, username)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// Me resolves the authenticated principal: console users first, staff members
// as a fallback since both kinds of token carry their owner's id.
func (s *serviceImpl) Me(ctx context.Context, userID string) (res dto.MeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID != constant.Empty {
		return dto.MeResponse{
			ID:       user.ID,
			Email:    user.Email,
			Role:     user.Level,
			FullName: user.FullName,
		}, nil
	}

	staff, err := s.staffRepo.Get(ctx, shared.FilterByID(userID, staffModel.FieldID, staffModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff member")

		return res, fmt.Errorf("failed to get staff member: %w", err)
	}

	if staff.ID == constant.Empty {
		return res, failure.NotFound("account not found")
	}

	return dto.MeResponse{
		ID:       staff.ID,
		Email:    staff.Email,
		Role:     staff.Role,
		FullName: &staff.Name,
	}, nil
}
