package http

import (
	"github.com/labstack/echo/v4"

	"flourmill/internal/core/application/usecases/commands"
	"flourmill/internal/core/application/usecases/queries"
	"flourmill/internal/core/domain/model/inventory"
	"flourmill/internal/core/domain/model/kernel"
)

func (s *Server) GetBins(ctx echo.Context) error {
	bins, err := s.getAllBinsHandler.Handle(ctx.Request().Context(), queries.NewGetAllBinsQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, bins)
}

type createBinRequest struct {
	BinName        string  `json:"bin_name"`
	BinType        string  `json:"bin_type"`
	Capacity       float64 `json:"capacity"`
	IdentityNumber string  `json:"identity_number"`
}

func (s *Server) CreateBin(ctx echo.Context) error {
	var req createBinRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	binType, err := inventory.BinTypeFromString(req.BinType)
	if err != nil {
		return respondError(ctx, err)
	}

	binID := kernel.NewUUID()
	cmd, err := commands.NewCreateBinCommand(binID, req.BinName, binType, req.Capacity, req.IdentityNumber)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.binHandler.HandleCreate(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, map[string]string{"id": binID.String()})
}

type updateBinRequest struct {
	BinName        string  `json:"bin_name"`
	Capacity       float64 `json:"capacity"`
	IdentityNumber string  `json:"identity_number"`
}

func (s *Server) UpdateBin(ctx echo.Context) error {
	binID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	var req updateBinRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateBinCommand(binID, req.BinName, req.Capacity, req.IdentityNumber)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.binHandler.HandleUpdate(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, nil)
}

func (s *Server) DeleteBin(ctx echo.Context) error {
	binID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	cmd, err := commands.NewDeleteBinCommand(binID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.binHandler.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, nil)
}

func (s *Server) GetStorageLocations(ctx echo.Context) error {
	locations, err := s.getStorageLocationsHandler.Handle(
		ctx.Request().Context(), queries.NewGetStorageLocationsQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, locations)
}

type createShallowRequest struct {
	ShallowName string  `json:"shallow_name"`
	ShallowCode string  `json:"shallow_code"`
	Capacity    float64 `json:"capacity"`
}

func (s *Server) CreateShallow(ctx echo.Context) error {
	var req createShallowRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	shallowID := kernel.NewUUID()
	cmd, err := commands.NewCreateShallowCommand(shallowID, req.ShallowName, req.ShallowCode, req.Capacity)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.storageHandler.HandleCreateShallow(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, map[string]string{"id": shallowID.String()})
}

func (s *Server) DeleteShallow(ctx echo.Context) error {
	cmd, err := deleteStorageCommand(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.storageHandler.HandleDeleteShallow(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, nil)
}

type createGodownRequest struct {
	GodownName string  `json:"godown_name"`
	GodownCode string  `json:"godown_code"`
	Capacity   float64 `json:"capacity"`
	Location   string  `json:"location"`
}

func (s *Server) CreateGodown(ctx echo.Context) error {
	var req createGodownRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	godownID := kernel.NewUUID()
	cmd, err := commands.NewCreateGodownCommand(godownID, req.GodownName, req.GodownCode, req.Capacity, req.Location)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.storageHandler.HandleCreateGodown(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, map[string]string{"id": godownID.String()})
}

func (s *Server) DeleteGodown(ctx echo.Context) error {
	cmd, err := deleteStorageCommand(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.storageHandler.HandleDeleteGodown(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, nil)
}

func deleteStorageCommand(ctx echo.Context) (commands.DeleteStorageCommand, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return commands.DeleteStorageCommand{}, err
	}
	return commands.NewDeleteStorageCommand(id)
}

func (s *Server) GetProductCatalog(ctx echo.Context) error {
	catalog, err := s.getProductCatalogHandler.Handle(
		ctx.Request().Context(), queries.NewGetProductCatalogQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, catalog)
}

type createFinishedGoodRequest struct {
	ProductName string `json:"product_name"`
	InitialName string `json:"initial_name"`
}

func (s *Server) CreateFinishedGood(ctx echo.Context) error {
	var req createFinishedGoodRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateFinishedGoodCommand(productID, req.ProductName, req.InitialName)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.productCatalogHandler.HandleCreateFinishedGood(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, map[string]string{"id": productID.String()})
}

func (s *Server) DeleteFinishedGood(ctx echo.Context) error {
	cmd, err := deleteProductCommand(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.productCatalogHandler.HandleDeleteFinishedGood(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, nil)
}

type createRawProductRequest struct {
	ProductName string `json:"product_name"`
}

func (s *Server) CreateRawProduct(ctx echo.Context) error {
	var req createRawProductRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateRawProductCommand(productID, req.ProductName)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.productCatalogHandler.HandleCreateRawProduct(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, map[string]string{"id": productID.String()})
}

func (s *Server) DeleteRawProduct(ctx echo.Context) error {
	cmd, err := deleteProductCommand(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.productCatalogHandler.HandleDeleteRawProduct(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, nil)
}

func deleteProductCommand(ctx echo.Context) (commands.DeleteProductCommand, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return commands.DeleteProductCommand{}, err
	}
	return commands.NewDeleteProductCommand(id)
}
