package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"devcamper_backend/internals/constants"
	"devcamper_backend/internals/features/bootcamps/bootcamp/dto"
	"devcamper_backend/internals/features/bootcamps/bootcamp/model"
	"devcamper_backend/internals/features/bootcamps/bootcamp/repository"
	helper "devcamper_backend/internals/helpers"
	helperAuth "devcamper_backend/internals/helpers/auth"
	"devcamper_backend/internals/helpers/storage"
)

type BootcampService struct {
	repo    repository.Repository
	storage storage.Storage

	maxUpload int64
	maxDim    int
}

func NewBootcampService(repo repository.Repository, store storage.Storage, maxUpload int64, maxDim int) *BootcampService {
	return &BootcampService{repo: repo, storage: store, maxUpload: maxUpload, maxDim: maxDim}
}

func notFound(id uuid.UUID) error {
	return helper.NotFound(fmt.Sprintf("Bootcamp not found with id of %s", id))
}

// load fetches the bootcamp and checks that me may modify it.
func (s *BootcampService) load(ctx context.Context, me *helperAuth.Principal, id uuid.UUID, action string) (*model.BootcampModel, error) {
	b, err := s.repo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}
	if !helperAuth.CanModify(me.ID, b.UserID, me.Role) {
		return nil, helper.Forbidden(constants.OwnerError(me.ID.String(), action, "bootcamp"))
	}
	return b, nil
}

func (s *BootcampService) Get(ctx context.Context, id uuid.UUID) (*model.BootcampModel, error) {
	b, err := s.repo.FindWithCourses(ctx, id)
	if repository.IsNotFound(err) {
		return nil, notFound(id)
	}
	return b, err
}

// Create publishes a bootcamp for me. Non-admins may own only one.
func (s *BootcampService) Create(ctx context.Context, me *helperAuth.Principal, req dto.CreateBootcampRequest) (*model.BootcampModel, error) {
	b := req.ToModel(me.ID)
	if err := helper.ValidateStruct(b); err != nil {
		return nil, err
	}

	err := s.repo.WithOwnerLock(ctx, me.ID, func(repo repository.Repository) error {
		if !me.Role.IsAdmin() {
			n, err := repo.CountByOwner(ctx, me.ID)
			if err != nil {
				return err
			}
			if n > 0 {
				return helper.BadRequest(fmt.Sprintf("The user with ID %s has already published a bootcamp", me.ID))
			}
		}

		slug, err := repo.UniqueSlug(ctx, b.Name, uuid.Nil)
		if err != nil {
			return err
		}
		b.Slug = slug
		return repo.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] bootcamp %s created by %s", b.ID, me.ID)
	return b, nil
}

// Update applies a partial update and re-validates. A name change
// regenerates the slug.
func (s *BootcampService) Update(ctx context.Context, me *helperAuth.Principal, id uuid.UUID, req dto.UpdateBootcampRequest) (*model.BootcampModel, error) {
	b, err := s.load(ctx, me, id, "update")
	if err != nil {
		return nil, err
	}
	oldName := b.Name
	cols := req.Apply(b)
	if len(cols) == 0 {
		return b, nil
	}
	if err := helper.ValidateStruct(b); err != nil {
		return nil, err
	}

	if b.Name != oldName {
		slug, err := s.repo.UniqueSlug(ctx, b.Name, b.ID)
		if err != nil {
			return nil, err
		}
		b.Slug = slug
		cols = append(cols, "slug")
	}

	if err := s.repo.Update(ctx, b, cols...); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BootcampService) Delete(ctx context.Context, me *helperAuth.Principal, id uuid.UUID) error {
	b, err := s.load(ctx, me, id, "delete")
	if err != nil {
		return err
	}
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return notFound(id)
		}
		return err
	}
	s.removePhoto(ctx, b.Photo)
	log.Printf("[INFO] bootcamp %s deleted by %s", id, me.ID)
	return nil
}

// storedPhoto returns the storage name behind a photo reference, "" for
// the default placeholder.
func storedPhoto(photo string) string {
	name := path.Base(photo)
	if photo == "" || name == model.DefaultPhoto || !strings.HasPrefix(name, "photo_") {
		return ""
	}
	return name
}

// removePhoto drops an uploaded photo. Failures are logged only.
func (s *BootcampService) removePhoto(ctx context.Context, photo string) {
	name := storedPhoto(photo)
	if name == "" {
		return
	}
	if err := s.storage.Delete(ctx, name); err != nil {
		log.Printf("[WARN] remove photo %s: %v", name, err)
	}
}

/* ===============================
   Photo upload
=================================*/

// UploadPhoto stores the image as photo_<id><ext> and returns the saved
// photo reference.
func (s *BootcampService) UploadPhoto(ctx context.Context, me *helperAuth.Principal, id uuid.UUID, fh *multipart.FileHeader) (string, error) {
	b, err := s.load(ctx, me, id, "update")
	if err != nil {
		return "", err
	}
	if fh == nil {
		return "", helper.BadRequest("Please upload a file")
	}

	contentType := fh.Header.Get("Content-Type")
	ext := constants.ImageExt(fh.Filename)
	if !strings.HasPrefix(contentType, "image") || ext == "" {
		return "", helper.BadRequest("Please upload an image file")
	}
	if fh.Size > s.maxUpload {
		return "", helper.BadRequest(fmt.Sprintf("Please upload an image less than %d", s.maxUpload))
	}

	f, err := fh.Open()
	if err != nil {
		return "", helper.Internal(err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, s.maxUpload+1))
	if err != nil {
		return "", helper.Internal(err)
	}
	if int64(len(data)) > s.maxUpload {
		return "", helper.BadRequest(fmt.Sprintf("Please upload an image less than %d", s.maxUpload))
	}

	data, err = helper.NormalizeImage(data, ext, s.maxDim)
	if err != nil {
		return "", helper.BadRequest("Please upload an image file")
	}

	name := fmt.Sprintf("photo_%s%s", b.ID, ext)
	url, err := s.storage.Put(ctx, name, contentType, data)
	if err != nil {
		log.Printf("[ERROR] photo upload bootcamp=%s: %v", b.ID, err)
		return "", helper.NewAppError(fiber.StatusInternalServerError, "Problem with file upload")
	}

	oldPhoto := b.Photo
	b.Photo = url
	if err := s.repo.Update(ctx, b, "photo"); err != nil {
		return "", err
	}
	if storedPhoto(oldPhoto) != name {
		s.removePhoto(ctx, oldPhoto)
	}
	return url, nil
}
