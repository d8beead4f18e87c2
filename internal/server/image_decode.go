package server

import (
	"bytes"
	"errors"
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

// DecodeImageHandler godoc
//
// @Summary Recover a secret from an image
// @Description This endpoint will extract the secret previously embedded in the supplied image. The embedded data carries no header, so the caller must supply the bit count the image was encoded with. All errors are returned as JSON
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.DecodeImageRequest true "Body with stego image and the number of low bits used during encoding"
// @Success 200 {object} api.DecodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /decode/image [post]
func DecodeImageHandler(ctx *gin.Context) {
	var requestBody api.DecodeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image decode request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	secret, stats, err := extractSecretFromImage(requestBody.StegoImage, requestBody.LsbsToUse)
	if err != nil {
		abortWithDecodeError(ctx, logger, err)
		return
	}

	logger.With("stats", toHumanizedDecodeStats(stats)).Info("Image decoding was successful")

	ctx.JSON(http.StatusOK, api.DecodeImageResponse{Secret: secret})
}

// DecodeImageFlatbufferHandler is the octet-stream twin of DecodeImageHandler.
func DecodeImageFlatbufferHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing flatbuffer image decode request")

	requestBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		logger.WithError(err).Error("Error reading request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	decodeImageRequest := StegoImage.GetRootAsImageDecodeRequest(requestBody, 0)
	secret, stats, err := extractSecretFromImage(decodeImageRequest.StegoImageBytes(), decodeImageRequest.LsbsToUse())
	if err != nil {
		abortWithDecodeError(ctx, logger, err)
		return
	}

	logger.With("stats", toHumanizedDecodeStats(stats)).Info("Image decoding was successful")

	fbResponseBuilder := flatbuffers.NewBuilder(len(secret))
	secretOffset := fbResponseBuilder.CreateByteVector(secret)
	StegoImage.ImageDecodeResponseStart(fbResponseBuilder)
	StegoImage.ImageDecodeResponseAddSecret(fbResponseBuilder, secretOffset)
	response := StegoImage.ImageDecodeResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)

	ctx.Data(http.StatusOK, "application/octet-stream", fbResponseBuilder.FinishedBytes())
}

func extractSecretFromImage(stegoImage []byte, lsbsToUse byte) ([]byte, model.DecodeStats, error) {
	imageToDecode, err := stegImage.DecodeRGB(bytes.NewReader(stegoImage))
	if err != nil {
		return nil, model.DecodeStats{}, errImageDecode{err}
	}

	extractor, err := stegImage.NewExtractor(imageToDecode, config.ImageDecodeConfig{LSBsToUse: lsbsToUse})
	if err != nil {
		return nil, model.DecodeStats{}, err
	}

	var secretBuffer bytes.Buffer
	if err = extractor.Extract(&secretBuffer); err != nil {
		return nil, model.DecodeStats{}, err
	}

	return secretBuffer.Bytes(), extractor.Stats(), nil
}

func abortWithDecodeError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Error("Error extracting secret from image")

	var decodeErr errImageDecode
	switch {
	case errors.As(err, &decodeErr):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
	case errors.Is(err, bits.ErrInvalidBitCount):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidBitCount)
	default:
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errDecode)
	}
}
