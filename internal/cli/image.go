package cli

import (
	"fmt"
	"image/png"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Molcarrus/stegnoapp/pkg/config"
	stegImage "github.com/Molcarrus/stegnoapp/pkg/image"
	"github.com/Molcarrus/stegnoapp/pkg/model"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

func ImageCommands() *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Hide and recover secrets in the least significant bits of raster images",
		Example: "stegnoapp image encode --image cover.png --secret secret.bin --output-file stego.png --bits 2",
	}

	imageCmd.AddCommand(encodeImageCommand(), decodeSecretFromImageCommand())
	return imageCmd
}

type encodeImageOpts struct {
	sourceImage    string
	outputImage    string
	secretFile     string
	bits           int8
	pngCompression string
}

func (o encodeImageOpts) toEncodeConfig() config.ImageEncodeConfig {
	mappedCompression, found := pngCompressionMapping[o.pngCompression]
	if !found {
		mappedCompression = png.DefaultCompression
	}
	return config.ImageEncodeConfig{
		LSBsToUse:           byte(o.bits),
		PngCompressionLevel: mappedCompression,
	}
}

func encodeImageCommand() *cobra.Command {
	opts := encodeImageOpts{}

	encImgCmd := &cobra.Command{
		Use:     "encode",
		Example: "stegnoapp image encode --image cover.png --secret secret.bin --output-file stego.png --bits 2",
		Short:   "Hide a secret file inside an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return EncodeImageWithSecret(opts.sourceImage, opts.secretFile, opts.outputImage, opts.toEncodeConfig())
		},
	}

	encImgCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Cover image to hide the secret in (original will not be touched)")
	encImgCmd.Flags().StringVar(&opts.secretFile, "secret", "", "File to hide inside the cover image")
	encImgCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Output path for the image with the embedded secret")

	encImgCmd.Flags().Int8Var(&opts.bits, "bits", config.DefaultLSBsToUse, "Least significant bits to overwrite in each image byte. Can be 1-8. The more bits are used, the more distortion will be noticeable in the final image")
	encImgCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")

	MarkFlagsRequired(encImgCmd, "image", "secret", "output-file")

	return encImgCmd
}

func EncodeImageWithSecret(imageSourcePath, secretPath, outputPath string, cfg config.ImageEncodeConfig) error {
	srcImage, err := getImageFromFilePath(imageSourcePath)
	if err != nil {
		return err
	}

	secretFile, err := os.Open(secretPath)
	if err != nil {
		return fmt.Errorf("opening secret file: %w", err)
	}
	defer secretFile.Close()

	secretStat, err := secretFile.Stat()
	if err != nil {
		return fmt.Errorf("reading secret file size: %w", err)
	}
	secret := model.SecretFile{
		Name:    secretFile.Name(),
		Content: secretFile,
		Size:    secretStat.Size(),
	}

	embedder, err := stegImage.NewEmbedder(srcImage, secret.Size, cfg)
	if err != nil {
		return err
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output image: %w", err)
	}
	defer outputFile.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s := NewSpinner()
		s.FinalMSG = fmt.Sprintf("Hid %s (%s) inside %s (image holds up to %s at this chunk width)\n",
			secret.Name, humanize.Bytes(uint64(secret.Size)), outputPath, humanize.Bytes(uint64(embedder.Capacity())))
		s.Start()
		for {
			if embedder.Stats().DataEncoding == 0 {
				s.Prefix = "Embedding secret "
			} else if embedder.Stats().OutputImageEncoding == 0 {
				s.Prefix = "Generating output PNG image "
			} else {
				break
			}
			time.Sleep(time.Millisecond * 500)
		}
		s.Stop()
	}()

	err = embedder.Embed(secret.Content)
	if err != nil {
		return err
	}
	err = embedder.WriteEncodedPNG(outputFile)
	if err != nil {
		return err
	}

	wg.Wait()
	fmt.Printf("Embedder setup time: %s\n", embedder.Stats().Setup)
	fmt.Printf("Secret embed time: %s\n", embedder.Stats().DataEncoding)
	fmt.Printf("Output image encode time: %s\n", embedder.Stats().OutputImageEncoding)
	return nil
}

func decodeSecretFromImageCommand() *cobra.Command {
	var (
		encodedImageFile string
		outputFile       string
		bits             int8
	)

	decodeCommand := &cobra.Command{
		Use:     "decode",
		Example: "stegnoapp image decode --source stego.png --output-file secret.bin --bits 2",
		Short:   "Recover a secret from an image encoded by stegnoapp",
		RunE: func(cmd *cobra.Command, args []string) error {
			return DecodeSecretFromImage(encodedImageFile, outputFile, config.ImageDecodeConfig{LSBsToUse: byte(bits)})
		},
	}

	decodeCommand.Flags().StringVar(&encodedImageFile, "source", "", "Image generated by stegnoapp to recover the secret from")
	decodeCommand.Flags().StringVar(&outputFile, "output-file", "", "Output path for the recovered secret")
	decodeCommand.Flags().Int8Var(&bits, "bits", config.DefaultLSBsToUse, "Chunk width the image was encoded with; the embedded data carries no header, so a wrong value yields garbage")

	MarkFlagsRequired(decodeCommand, "source", "output-file")
	return decodeCommand
}

func DecodeSecretFromImage(encodedMediaFile, outputPath string, cfg config.ImageDecodeConfig) error {
	s := NewSpinner()
	s.Prefix = "Reading source image from disk "
	s.Start()

	srcImage, err := getImageFromFilePath(encodedMediaFile)
	if err != nil {
		s.Stop()
		return err
	}

	extractor, err := stegImage.NewExtractor(srcImage, cfg)
	if err != nil {
		s.Stop()
		return err
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		s.Stop()
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outputFile.Close()

	s.Prefix = "Extracting secret "
	err = extractor.Extract(outputFile)
	if err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("Recovered secret written to %s\n", outputPath)
	s.Stop()

	fmt.Printf("Secret extract time: %s\n", extractor.Stats().DataDecoding)
	return nil
}

func getImageFromFilePath(filePath string) (*stegImage.RGBImage, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	srcImage, err := stegImage.DecodeRGB(f)
	if err != nil {
		return nil, err
	} else if err = f.Close(); err != nil {
		return nil, err
	}

	return srcImage, nil
}
