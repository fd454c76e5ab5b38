package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/handler/dto"
	"github.com/tienchinh21/bkasim-cms/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const giftImagesField = "images"

func (h *Handler) GetGiftsByEvent(c *ginext.Context) {
	gifts, err := h.gifts.ListByEvent(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, gifts)
}

func (h *Handler) CreateGift(c *ginext.Context) {
	input, closeFiles, err := bindGiftForm(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	defer closeFiles()

	gift, err := h.gifts.Create(c.Request.Context(), middleware.CallerFrom(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Tạo quà tặng thành công", gift)
}

func (h *Handler) UpdateGift(c *ginext.Context) {
	input, closeFiles, err := bindGiftForm(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	defer closeFiles()

	gift, err := h.gifts.Update(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Cập nhật quà tặng thành công", gift)
}

func (h *Handler) DeleteGift(c *ginext.Context) {
	if err := h.gifts.Delete(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	okMessage(c, "Xóa quà tặng thành công", nil)
}

// bindGiftForm opens every uploaded image. The caller must run the returned
// close func once the service is done reading.
func bindGiftForm(c *ginext.Context) (domain.GiftInput, func(), error) {
	noop := func() {}

	var form dto.GiftForm
	if err := c.ShouldBind(&form); err != nil {
		return domain.GiftInput{}, noop, err
	}

	input := domain.GiftInput{
		EventID:    form.EventID,
		GiftName:   form.GiftName,
		Quantity:   form.Quantity,
		KeepImages: form.KeepImages,
	}

	mf, err := c.MultipartForm()
	if err != nil || mf == nil {
		return input, noop, nil
	}

	var opened []io.Closer
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	for _, fh := range mf.File[giftImagesField] {
		f, err := openUpload(fh)
		if err != nil {
			closeAll()
			return domain.GiftInput{}, noop, err
		}
		opened = append(opened, f)
		input.Images = append(input.Images, domain.Upload{
			Filename: fh.Filename,
			Size:     fh.Size,
			Content:  f,
		})
	}
	return input, closeAll, nil
}

func openUpload(fh *multipart.FileHeader) (multipart.File, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	return f, nil
}
