package server

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/Molcarrus/stegnoapp/api"
	"github.com/Molcarrus/stegnoapp/api/stegnoapp/StegoImage"
	"github.com/Molcarrus/stegnoapp/internal/bits"
	"github.com/Molcarrus/stegnoapp/internal/logging"
	"github.com/Molcarrus/stegnoapp/pkg/config"
	stegImage "github.com/Molcarrus/stegnoapp/pkg/image"
	"github.com/Molcarrus/stegnoapp/pkg/model"
)

// EncodeImageHandler godoc
//
// @Summary Hide a secret inside the supplied image
// @Description This endpoint will embed the supplied secret in the low bits of the image and return the resulting PNG. All errors are returned as JSON
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.EncodeImageRequest true "Body with cover image, secret to hide and the number of low bits to overwrite per image byte"
// @Success 200 {object} api.EncodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/image [post]
func EncodeImageHandler(ctx *gin.Context) {
	var requestBody api.EncodeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image encode request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	encodedImage, stats, err := encodeSecretIntoImage(requestBody.CoverImage, requestBody.Secret, requestBody.LsbsToUse, len(requestBody.CoverImage))
	if err != nil {
		abortWithEncodeError(ctx, logger, err)
		return
	}

	logger.With("stats", toHumanizedEncodeStats(stats)).Info("Image encoding was successful")

	ctx.JSON(http.StatusOK, api.EncodeImageResponse{EncodedImage: encodedImage})
}

// EncodeImageFlatbufferHandler is the octet-stream twin of EncodeImageHandler, for
// clients that want to avoid base64 inflation on large images.
func EncodeImageFlatbufferHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing flatbuffer image encode request")

	requestBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		logger.WithError(err).Error("Error reading request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	encodeImageRequest := StegoImage.GetRootAsImageEncodeRequest(requestBody, 0)
	encodedImage, stats, err := encodeSecretIntoImage(encodeImageRequest.CoverImageBytes(), encodeImageRequest.SecretBytes(),
		encodeImageRequest.LsbsToUse(), encodeImageRequest.CoverImageLength())
	if err != nil {
		abortWithEncodeError(ctx, logger, err)
		return
	}

	logger.With("stats", toHumanizedEncodeStats(stats)).Info("Image encoding was successful")

	fbResponseBuilder := flatbuffers.NewBuilder(len(encodedImage))
	imageOffset := fbResponseBuilder.CreateByteVector(encodedImage)
	StegoImage.ImageEncodeResponseStart(fbResponseBuilder)
	StegoImage.ImageEncodeResponseAddEncodedImage(fbResponseBuilder, imageOffset)
	response := StegoImage.ImageEncodeResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)

	ctx.Data(http.StatusOK, "application/octet-stream", fbResponseBuilder.FinishedBytes())
}

func encodeSecretIntoImage(coverImage, secret []byte, lsbsToUse byte, originalImageSize int) ([]byte, model.EncodeStats, error) {
	imageToEncode, err := stegImage.DecodeRGB(bytes.NewReader(coverImage))
	if err != nil {
		return nil, model.EncodeStats{}, errImageDecode{err}
	}

	embedder, err := stegImage.NewEmbedder(imageToEncode, int64(len(secret)), config.ImageEncodeConfig{
		LSBsToUse:           lsbsToUse,
		PngCompressionLevel: png.BestCompression, // to reduce bandwidth costs since lower compression results in huge images
	})
	if err != nil {
		return nil, model.EncodeStats{}, err
	}

	if err = embedder.Embed(bytes.NewReader(secret)); err != nil {
		return nil, model.EncodeStats{}, err
	}

	// pre allocate with size of original, since it should be similar
	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, originalImageSize))
	if err = embedder.WriteEncodedPNG(encodedImageBuffer); err != nil {
		return nil, model.EncodeStats{}, err
	}

	return encodedImageBuffer.Bytes(), embedder.Stats(), nil
}

func abortWithEncodeError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Error("Error encoding secret into image")

	var decodeErr errImageDecode
	switch {
	case errors.As(err, &decodeErr):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
	case errors.Is(err, bits.ErrInvalidBitCount):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidBitCount)
	case errors.Is(err, stegImage.ErrSecretTooLarge):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errSecretTooLarge)
	default:
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errEncode)
	}
}

type errImageDecode struct {
	err error
}

func (e errImageDecode) Error() string {
	return e.err.Error()
}

func (e errImageDecode) Unwrap() error {
	return e.err
}
